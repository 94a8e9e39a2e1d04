// Package platform wraps filesystem calls whose behavior differs between
// Unix and Windows.
package platform
