// Package widget implements the data-structure widgets: the shared
// Element unit, the ordered Collection core, and the Array, Stack, and
// Variable widgets built on it.
//
// Every widget owns a scene.Group and keeps its logical model and its
// visual children synchronized through each mutation: appending a value
// creates and attaches an element, popping one detaches it and re-packs
// the remainder, swapping exchanges both the logical slots and the visual
// placements. Mutations come in plain and animated forms; the animated
// form applies the same logical mutation immediately and additionally
// returns an anim.Timeline describing the visual transition.
//
// Graph widgets live in the widget/graph subpackage.
package widget
