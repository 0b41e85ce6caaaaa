package internal

// SDKName is the client name reported in the User-Agent header.
const SDKName = "InngestGo"

// SDKVersion is the current version of the SDK.
const SDKVersion = "0.1.0"

// UserAgent returns the base User-Agent value sent with every request, in the form "<name> <version>".
func UserAgent() string {
	return SDKName + " " + SDKVersion
}
