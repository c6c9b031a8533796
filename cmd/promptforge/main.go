// Package main provides the promptforge CLI for turning unstructured
// text into structured AI prompts.
package main

func main() {
	Execute()
}
