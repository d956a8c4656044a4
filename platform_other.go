//go:build !darwin

package main

func hideAppFromDock() {}

func focusAppWindow() {}
