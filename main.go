/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "telewire/cmd"

func main() {
	cmd.Execute()
}
