package commons

// Version is the current release of the commons module.
const Version = "0.1.0"
