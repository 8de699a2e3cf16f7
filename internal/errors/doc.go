// Package errors provides typed error values for netctl2iwd.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. The set is
// closed: every failure a conversion can hit maps onto exactly one of these
// values, so the CLI layer can report a stable, human-readable cause for
// each input file.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Profile errors: The input is not a convertible wireless profile
//     (ErrNotWireless, ErrMissingKeys, ErrMissingSSID, ErrUnsupportedSecurity)
//   - File errors: The OS refused an I/O operation
//     (ErrPermissionDenied, ErrFileExists, ErrOS)
//
// Platform error types (syscall errors, fs.PathError) never escape the
// convert package; they are classified onto the file-error sentinels at the
// point where the I/O happens.
//
// # Usage
//
// Return errors from internal packages:
//
//	if !sec.HasKey("ESSID") {
//	    return Network{}, errors.ErrMissingSSID
//	}
//
// Handle errors in the CLI layer:
//
//	if errors.Is(err, kerrors.ErrFileExists) {
//	    // Tell the user to move the existing file out of the way
//	}
package errors
