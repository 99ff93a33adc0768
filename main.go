package main

import "prefab-reconciler/cmd"

func main() {
	cmd.Execute()
}
