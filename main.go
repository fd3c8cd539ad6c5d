/*
Copyright © 2026 James Tio
*/
package main

import "github.com/jamestiotio/iconforge/cmd"

func main() {
	cmd.Execute()
}
