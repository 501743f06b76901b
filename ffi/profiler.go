package ffi

import "unsafe"

// ProfilerV2 is the IUnityProfilerV2 table.
type ProfilerV2 struct {
	CreateCategory        func(category *uint16, name *byte, unused uint32) int32
	CreateMarker          func(desc **MarkerDesc, name *byte, category uint16, flags uint16, metadataCount int32) int32
	SetMarkerMetadataName func(desc *MarkerDesc, index int32, name *byte, dataType uint8, unit uint8) int32
	EmitEvent             func(desc *MarkerDesc, eventType uint16, metadataCount uint16, metadata *MarkerData)
	IsEnabled             func() int32
	IsAvailable           func() int32
	RegisterThread        func(threadID *uint64, groupName *byte, name *byte) int32
	UnregisterThread      func(threadID uint64) int32
}

// MarkerDesc is the host-allocated marker descriptor. The plugin only ever
// reads Name back.
type MarkerDesc struct {
	CallbackData unsafe.Pointer
	ID           uint16
	Flags        uint16
	CategoryID   uint16
	Name         *byte
	MetaDataDesc unsafe.Pointer
}

// MarkerData is one metadata element of an emitted event.
type MarkerData struct {
	Type      uint8
	Reserved0 uint8
	Reserved1 uint16
	Size      uint32
	Ptr       unsafe.Pointer
}

// Event types accepted by EmitEvent.
const (
	EventTypeBegin  uint16 = 0
	EventTypeEnd    uint16 = 1
	EventTypeSingle uint16 = 2
)
