// Package bundle exposes the read-only resource tree shipped with the
// installer: kernel templates and jars under kernel/, fonts and the
// stylesheet under custom/. Callers depend on the three-operation Resources
// interface; Dir implements it over an on-disk directory and Locate finds
// that directory for the running binary.
package bundle
