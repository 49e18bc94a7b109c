// Copyright (c) 2018 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package commandline

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// ExternalProcess wraps the execution of a command line tool.
type ExternalProcess struct {
	// CommandName is the executable to run.
	CommandName string

	// Arguments are the command line arguments passed to CommandName.
	Arguments []string

	// WaitForExit makes Launch block until the process has exited.
	WaitForExit bool

	// StopTimeout is how long Stop waits after interrupting the process
	// before it is killed.  Zero means wait forever.
	StopTimeout time.Duration

	isRunning      bool
	runningCommand *exec.Cmd
	exited         chan struct{}
	exitErr        error
}

// FullConsoleCommand returns the full console command string.
func (process *ExternalProcess) FullConsoleCommand() string {
	if process.runningCommand == nil {
		return strings.Join(append([]string{process.CommandName},
			process.Arguments...), " ")
	}
	cmd := process.runningCommand
	return cmd.Path + " " + strings.Join(cmd.Args[1:], " ")
}

// Launch starts the process.  The output of the process is copied to
// os.Stdout and os.Stderr when debugOutput is set.
func (process *ExternalProcess) Launch(debugOutput bool) error {
	if process.isRunning {
		return fmt.Errorf("process is already running: %v",
			process.FullConsoleCommand())
	}

	cmd := exec.Command(process.CommandName, process.Arguments...)
	if debugOutput {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("unable to start %v: %w", process.CommandName,
			err)
	}

	process.runningCommand = cmd
	process.isRunning = true
	process.exited = make(chan struct{})
	go func() {
		process.exitErr = cmd.Wait()
		close(process.exited)
	}()

	if process.WaitForExit {
		return process.wait()
	}
	return nil
}

// wait blocks until the process exits.
func (process *ExternalProcess) wait() error {
	<-process.exited
	process.isRunning = false
	return process.exitErr
}

// Stop interrupts the running process and waits until it exits.  It is
// important that the process be stopped via Stop, otherwise it will persist
// unless explicitly killed.
func (process *ExternalProcess) Stop() error {
	return process.stop(os.Stdout)
}

func (process *ExternalProcess) stop(logStream io.Writer) error {
	if !process.IsRunning() {
		return fmt.Errorf("process is not running: %v",
			process.FullConsoleCommand())
	}

	fmt.Fprintf(logStream, "Stopping process: %v\n",
		process.FullConsoleCommand())

	osProcess := process.runningCommand.Process

	// On windows, interrupt is not supported, so a kill signal is used
	// instead.
	sig := os.Interrupt
	if runtime.GOOS == "windows" {
		sig = os.Kill
	}
	if err := osProcess.Signal(sig); err != nil {
		return err
	}

	var timeout <-chan time.Time
	if process.StopTimeout > 0 {
		timer := time.NewTimer(process.StopTimeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case <-process.exited:
	case <-timeout:
		fmt.Fprintf(logStream, "Killing process: %v\n",
			process.FullConsoleCommand())
		if err := osProcess.Kill(); err != nil {
			return err
		}
		<-process.exited
	}
	process.isRunning = false
	return nil
}

// Exited returns a channel that is closed once the process terminates.  It is
// nil before Launch.
func (process *ExternalProcess) Exited() <-chan struct{} {
	return process.exited
}

// IsRunning reports whether the process was launched and has neither been
// stopped nor exited on its own.
func (process *ExternalProcess) IsRunning() bool {
	if !process.isRunning {
		return false
	}
	select {
	case <-process.exited:
		return false
	default:
		return true
	}
}
