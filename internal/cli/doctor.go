package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ps "github.com/mitchellh/go-ps"
)

type DoctorCmd struct{}

// Run performs health checks: store presence and writability, and other
// running habithero processes. The store supports a single mutator, so a
// second live process risks lost writes.
func (c *DoctorCmd) Run(ctx *Context) error {
	ok := true

	if _, err := os.Stat(ctx.ConfigPath); err == nil {
		fmt.Printf("✓ store present at %s\n", ctx.ConfigPath)
	} else if os.IsNotExist(err) {
		fmt.Println(warnStyle.Render("✗ store missing (it will be created on first use)"))
		ok = false
	} else {
		fmt.Println(warnStyle.Render(fmt.Sprintf("✗ store not readable: %v", err)))
		ok = false
	}

	dir := filepath.Dir(ctx.ConfigPath)
	probe := filepath.Join(dir, ".habithero-doctor")
	if err := os.WriteFile(probe, []byte("ok"), 0600); err != nil {
		fmt.Println(warnStyle.Render(fmt.Sprintf("✗ config directory not writable: %v", err)))
		ok = false
	} else {
		os.Remove(probe)
		fmt.Printf("✓ config directory writable (%s)\n", dir)
	}

	others, err := otherInstances()
	if err != nil {
		fmt.Println(warnStyle.Render(fmt.Sprintf("? could not enumerate processes: %v", err)))
	} else if len(others) > 0 {
		fmt.Println(warnStyle.Render(fmt.Sprintf("✗ %d other habithero process(es) running (pids %v); concurrent writers are unsupported", len(others), others)))
		ok = false
	} else {
		fmt.Println("✓ no other habithero process running")
	}

	if !ok {
		fmt.Println(subtleStyle.Render("Some checks failed; see above."))
	}
	return nil
}

// otherInstances returns pids of habithero processes other than this one.
func otherInstances() ([]int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return nil, err
	}
	self := os.Getpid()
	var pids []int
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		name := strings.TrimSuffix(p.Executable(), ".exe")
		if name == "habithero" {
			pids = append(pids, p.Pid())
		}
	}
	return pids, nil
}
