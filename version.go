package figure

// Version is the library version, also reported by the figure CLI.
const Version = "0.1.0"
