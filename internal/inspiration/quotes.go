// Package inspiration provides the static pool of quotes shown on the
// landing view.
package inspiration

import "math/rand/v2"

var quotes = []string{
	"The only way to do great work is to love what you do. - Steve Jobs",
	"Choose a job you love, and you'll never work a day in your life. - Confucius",
	"Your work is going to fill a large part of your life, and the only way to be truly satisfied is to do what you believe is great work. - Steve Jobs",
	"Success is not final, failure is not fatal: it is the courage to continue that counts. - Winston Churchill",
}

// Random returns one quote from the pool.
func Random() string {
	return quotes[rand.IntN(len(quotes))]
}

// All returns the full quote pool in a fixed order.
func All() []string {
	out := make([]string, len(quotes))
	copy(out, quotes)
	return out
}
