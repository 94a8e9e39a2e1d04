// Package kernel renders and registers the bundled kernel specs. Every
// entry of the bundle's kernel/ tree except "base" is a kernel; its
// kernel.json template has each __PATH__ token replaced by the classpath
// (base jars, then the kernel's own jars) and is installed with
// `jupyter kernelspec install` from a temporary directory. Validate checks a
// rendered descriptor against the kernelspec schema; only doctor uses it.
package kernel
