/*
Package pwaicon generates the placeholder icon set of a Progressive Web App.
Every icon is a square PNG with the theme label centered on a solid background,
cut by a rounded rectangle mask, and saved as icon-{size}x{size}.png.

The package provides a command line interface which, invoked without any flag,
writes the default icon set into the public/icons folder of the current project.
To check the supported flags type:

	$ pwaicon --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"context"
		"fmt"

		"github.com/esimov/pwaicon"
	)

	func main() {
		cfg := pwaicon.DefaultConfig(".")
		gen, err := pwaicon.NewGenerator(cfg, nil)
		if err != nil {
			fmt.Printf("Invalid configuration: %s", err.Error())
			return
		}
		if _, err := gen.Generate(context.Background()); err != nil {
			fmt.Printf("Error generating the icons: %s", err.Error())
		}
	}
*/
package pwaicon
