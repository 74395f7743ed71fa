package main

import (
	"fmt"
	"os"

	"github.com/joshyorko/sbomlic/cmd"
	"github.com/joshyorko/sbomlic/common"
)

func ExitProtection() {
	status := recover()
	if status != nil {
		exit, ok := status.(common.ExitCode)
		if ok {
			exit.ShowMessage()
			common.WaitLogs()
			os.Exit(exit.Code)
		}
		common.Fatal("sbomlic", fmt.Errorf("recovering: %v", status))
		common.WaitLogs()
		os.Exit(1)
	}
	common.WaitLogs()
}

func main() {
	defer ExitProtection()
	cmd.Execute()
}
