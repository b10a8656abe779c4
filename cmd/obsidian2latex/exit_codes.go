package main

// Exit codes for the obsidian2latex CLI.
// 0 on success, 1 on any conversion failure or unhandled error.
const (
	exitSuccess = 0
	exitError   = 1
)
