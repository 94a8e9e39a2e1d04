// Package assets copies the bundled fonts and stylesheet into the notebook
// application's static/custom directory under an installation prefix.
package assets
