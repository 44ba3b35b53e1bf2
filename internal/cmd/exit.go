package cmd

// Exit codes returned by the upm binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid input or a schema violation.
	ExitValidationError = 2

	// ExitPermissionDenied indicates the filesystem refused access.
	ExitPermissionDenied = 4

	// ExitNotFound indicates a package, template, or file was not found.
	ExitNotFound = 5

	// ExitAborted indicates the user declined a confirmation.
	ExitAborted = 7
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitPermissionDenied:
		return "Permission Denied"
	case ExitNotFound:
		return "Not Found"
	case ExitAborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}
