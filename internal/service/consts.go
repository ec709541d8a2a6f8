package service

const (
	MessageEmptyPath        = "Provided path is null or empty."
	MessagePathNotFound     = "Provided path does not exist."
	MessageNoDescriptors    = "No config files found."
	MessageAssemblyNotFound = "Assembly file not found."
	MessageVersionMatch     = "Version match."
	MessageVersionMismatch  = "Version mismatch."

	parseErrorMessageFmt = "Error parsing config file %s: %v"
)

// UnknownVersion stands in for the actual version of a file without version information.
const UnknownVersion = "Unknown"

// Rejection reasons, used as metric labels.
const (
	RejectEmptyPath     = "empty_path"
	RejectPathNotFound  = "path_not_found"
	RejectNoDescriptors = "no_descriptors"
)
