// Package web serves the globalize page. Every action posts the whole form,
// so each request carries its own text and selections and the server keeps
// no session state.
package web
