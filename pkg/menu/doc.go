// Package menu holds the fixed mapping from pizza name to prototype recipe.
//
// The menu is built once and is read-only afterwards. Lookup returns the
// shared prototype rather than a copy; callers that intend to customize a
// pizza should Clone it first.
//
// Entries are kept in insertion order: margherita, pepperoni, hawaiian.
package menu
