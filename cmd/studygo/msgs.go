package main

type InitMsg struct{}

type ErrorMsg struct {
	err error
}

type ExportedMsg struct {
	files []string
}
