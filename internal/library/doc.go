// Package library provides the built-in node kinds and registers their
// capability handlers with the realization engine.
//
// Importing the package (even blank) installs the behavior table; the
// constructors here are the intended way to build content trees by hand
// or from a document file.
package library
