package main

import "github.com/keysift/keysift/cmd/keysift"

func main() { keysift.Execute() }
