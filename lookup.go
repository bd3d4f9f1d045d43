package main

import (
	"bufio"
	"os"
)

// readLine scans path for the 1-based line n and returns its content
// without the trailing newline. The file is opened fresh on every call
// so external edits are always picked up; nothing is cached.
func readLine(path string, n int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var total int

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		total++
		if total == n {
			return scanner.Text(), nil
		}
	}

	if err := scanner.Err(); err != nil {
		return "", err
	}

	return "", &OutOfRangeError{Requested: n, Total: total}
}
