package main

import (
	"fmt"
	"os"
	"os/exec"
)

// steps run in order; failures are reported but don't stop the rest.
var steps = [][]string{
	{"go", "fmt", "./..."},
	{"go", "vet", "./..."},
	{"golangci-lint", "run", "./..."},
	{"go", "install", "honnef.co/go/tools/cmd/staticcheck@latest"},
	{"staticcheck", "./..."},
	{"go", "install", "mvdan.cc/gofumpt@latest"},
	{"gofumpt", "-l", "-w", "."},
}

func runCommand(name string, args []string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("error running %s %v: %v", name, args, err)
	}
	return nil
}

func main() {
	failed := false
	for _, step := range steps {
		fmt.Printf("Running %s...\n", step[0])
		if err := runCommand(step[0], step[1:]); err != nil {
			fmt.Println(err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
	fmt.Println("All checks completed!")
}
