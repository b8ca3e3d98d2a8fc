// Package pizza provides the validated recipe model.
//
// # Overview
//
// A Recipe is a variant tag plus an ordered list of Fields. Every Field is
// constrained to an enumerated set of allowed values and re-validates on each
// write, so a Recipe is never left holding an ingredient outside its domain.
//
// All variants share the base fields (sauce, cheese, size) followed by their
// own fields in declaration order:
//
//	pepperoni:  sauce, cheese, size, meat
//	margherita: sauce, cheese, size, tomatoes
//	hawaiian:   sauce, cheese, size, meat, pineapple
//
// # Usage
//
//	p := pizza.NewPepperoni()
//	if err := p.SetCheese("no cheese"); err != nil {
//	    return err
//	}
//	fmt.Println(p.RenderDefault(decorate.NewEmoji()))
//	// Pizza Pepperoni🍕: tomato sauce, no cheese, L, pepperoni
//
// # Equality
//
// Recipes are value objects: two recipes are Equal when they share a variant
// and every field holds the same value. Recipes of different variants are
// never equal.
package pizza
