// Package toast manages short-lived, stacked, auto-dismissing status
// notifications with a bounded display queue.
//
// The manager owns at most five visible notifications at once (configurable);
// showing a sixth evicts the oldest, which animates out rather than
// vanishing. Each notification moves through a fixed lifecycle:
//
//	Entering → Visible → Exiting → Removed
//
// The flip from Entering to Visible is deferred to the next frame so the
// entry transition is observable. Once visible, an auto-dismiss timer is
// armed; expiry, a user dismissal, Clear, or capacity eviction transitions
// the notification to Exiting, and after a fixed 300ms transition delay the
// element is detached. No path skips Exiting.
//
// Dismissal is idempotent: timers are not cancelled on early removal, and a
// stale timer firing against an already-removed notification is a no-op.
//
// Rendering is abstracted behind the Surface capability so the queue and
// timing logic are testable without a real display. A lipgloss-styled
// TerminalSurface is included for command-line hosts.
//
// # Usage
//
//	manager, err := toast.NewManager(toast.NewTerminalSurface(os.Stderr))
//	if err != nil {
//	    return err
//	}
//
//	manager.Success("Agent created successfully")
//	manager.Error("Failed to export agents", toast.WithDuration(6*time.Second))
//	manager.Clear()
package toast
