// Command build is the project's goyek flow: go run ./build sassdoc
package main

import (
	"os"
	"os/exec"

	"github.com/goyek/goyek/v2"

	"git.home.luguber.info/inful/sassdocbuilder/internal/runner"
)

var vet = goyek.Define(goyek.Task{
	Name:  "vet",
	Usage: "Run go vet on all packages",
	Action: func(a *goyek.A) {
		cmd := exec.CommandContext(a.Context(), "go", "vet", "./...")
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			a.Error(err)
		}
	},
})

var sassdoc = runner.Register(goyek.DefaultFlow, runner.Options{
	BaseDir:    os.Getenv("SASSDOC_ROOT"),
	ReportPath: os.Getenv("SASSDOC_REPORT"),
})

var _ = goyek.Define(goyek.Task{
	Name:  "all",
	Usage: "Vet and generate documentation",
	Deps:  goyek.Deps{vet, sassdoc},
})

func main() {
	goyek.SetDefault(sassdoc)
	goyek.Main(os.Args[1:])
}
