// Package cloud builds word clouds: it tokenizes English text, drops
// stopwords and non-alphabetic tokens, lays the remaining words out by
// frequency on a fixed canvas and renders the result as a PNG.
package cloud
