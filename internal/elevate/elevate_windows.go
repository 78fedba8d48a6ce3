//go:build windows

package elevate

import "golang.org/x/sys/windows"

// requestElevation asks the shell to restart the binary with the runas
// verb, which triggers the UAC consent prompt.
func requestElevation(exe, argString string) error {
	verb, err := windows.UTF16PtrFromString("runas")
	if err != nil {
		return err
	}
	file, err := windows.UTF16PtrFromString(exe)
	if err != nil {
		return err
	}

	var params *uint16
	if argString != "" {
		if params, err = windows.UTF16PtrFromString(argString); err != nil {
			return err
		}
	}

	return windows.ShellExecute(0, verb, file, params, nil, windows.SW_SHOWNORMAL)
}
