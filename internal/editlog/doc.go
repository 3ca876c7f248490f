// Package editlog records the mutations applied to a map document and
// replays them backwards and forwards.
//
// Mutations pushed during one frame accumulate into a Group. At the end of
// the frame CommitFrame moves that group onto the history stack. Undo and
// Redo step a cursor along the stack and apply the groups to a Document.
// Selection-only groups are committed speculatively, scoped purges drop
// records that stop being meaningful, and a save marker drives the unsaved
// changes check.
//
// The log is not safe for concurrent use. It belongs to the goroutine that
// owns the document.
package editlog
