package common

var EnableLogging bool = false
var EnableDebug bool = false

const (
	// invalid page id
	InvalidPageID = -1
	// size of a data page in byte
	PageSize = 8192
	// size of the slotted index page header in byte
	SizeOfPageHeader = 24
	// size of one slot entry (tuple offset + tuple size) in byte
	SizeOfSlotEntry = 8
)

type SlotOffset uintptr
