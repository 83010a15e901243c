// Package compiler assembles transformed documentation pages into the single
// support-docs text artifact and writes it to disk.
package compiler
