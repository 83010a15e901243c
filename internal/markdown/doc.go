// Package markdown discovers MDX documentation files under a content root and
// turns each one into plain prose: the front matter header is dropped,
// component tags are stripped, and whitespace is normalised while fenced code
// blocks pass through untouched.
package markdown
