/*
 * Copyright (c) Yashwardhan-41007
 */

package util

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/viper"
)

// maxExitStatus keeps the vulnerable-project count inside the 8-bit exit
// range, below the values shells reserve for signals.
const maxExitStatus = 250

// ConfirmCommand function will add an interactive comfirmation with the message provided
func ConfirmCommand(message string, bypass bool) error {
	errAborted := fmt.Errorf("command aborted")
	if bypass {
		return nil
	}
	response := false
	prompt := &survey.Confirm{
		Message: message,
	}
	err := survey.AskOne(prompt, &response)
	if err != nil {
		return err
	}
	if !response {
		return errAborted
	}
	return nil
}

// IsOutputType check if the output type is t
func IsOutputType(t string) bool {
	return viper.GetString("output") == t
}

// ExitStatus converts a vulnerable-project count into a process exit code
func ExitStatus(count int) int {
	if count > maxExitStatus {
		return maxExitStatus
	}
	return count
}
