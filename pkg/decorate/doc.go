// Package decorate resolves display labels for rendered recipes.
//
// Signatures such as "Pepperoni:pizza:" embed emoji short codes between
// colons. The Emoji decorator swaps each known code for its emoji; unknown
// codes are kept literally so decoration never fails.
package decorate
