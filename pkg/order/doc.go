// Package order implements the menu listing and ordering operations used by
// the command line.
//
// # Listing
//
// ListMenu renders every menu entry with its default signature and joins the
// lines into one block:
//
//	Menu:
//	 -Pizza Margherita🍅: tomato sauce, mozzarella, L, tomatoes
//	 -Pizza Pepperoni🍕: tomato sauce, mozzarella, L, pepperoni
//	 -Pizza Hawaiian🍍: tomato sauce, mozzarella, L, chicken, pineapples
//
// # Ordering
//
// Order resolves the pizza by name and runs the timed deliver or pickup
// action depending on the delivery flag. The cook action exists in the
// kitchen but is not part of an order.
package order
