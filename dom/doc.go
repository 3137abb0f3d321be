// Package dom wraps the browser event targets used by the site. Every
// registration returns a Listener so that handlers can be detached and
// their callbacks released when the page is torn down.
package dom
