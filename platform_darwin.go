//go:build darwin

package main

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa
#import <Cocoa/Cocoa.h>

void HideAppFromDock() {
    dispatch_async(dispatch_get_main_queue(), ^{
        [NSApp setActivationPolicy:NSApplicationActivationPolicyAccessory];
    });
}

void FocusAppWindow() {
    dispatch_async(dispatch_get_main_queue(), ^{
        [NSApp activateIgnoringOtherApps:YES];
        [[NSApp mainWindow] makeKeyAndOrderFront:nil];
    });
}
*/
import "C"

// hideAppFromDock keeps the tray app out of the Dock and Cmd+Tab.
func hideAppFromDock() {
	C.HideAppFromDock()
}

// focusAppWindow activates the app and makes its main window key;
// accessory apps are not activated by showing a window.
func focusAppWindow() {
	C.FocusAppWindow()
}
