package inspect

// Version is the inspector release version.
const Version = "0.3.0"
