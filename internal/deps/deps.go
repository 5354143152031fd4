package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external dependency audionorm relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Available = false
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		resolved, err := exec.LookPath(cmd)
		if err != nil {
			status.Available = false
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Command = resolved
		status.Available = true
		results = append(results, status)
	}
	return results
}

// Missing returns the required dependencies that are unavailable.
func Missing(statuses []Status) []Status {
	var missing []Status
	for _, status := range statuses {
		if status.Available || status.Optional {
			continue
		}
		missing = append(missing, status)
	}
	return missing
}

// MissingError reports required binaries that could not be found.
type MissingError struct {
	Missing []Status
}

func (e *MissingError) Error() string {
	names := make([]string, 0, len(e.Missing))
	for _, status := range e.Missing {
		names = append(names, fmt.Sprintf("%s (%s)", status.Name, status.Detail))
	}
	return "missing required dependencies: " + strings.Join(names, ", ")
}

// Require checks the requirements and returns a *MissingError when any
// required binary is unavailable.
func Require(requirements []Requirement) ([]Status, error) {
	statuses := CheckBinaries(requirements)
	if missing := Missing(statuses); len(missing) > 0 {
		return statuses, &MissingError{Missing: missing}
	}
	return statuses, nil
}
