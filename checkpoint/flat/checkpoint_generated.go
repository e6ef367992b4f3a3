// Code in this file follows the layout flatc emits for a flatbuffers
// table, hand-written because no .fbs/flatc toolchain runs in this
// module; the schema it corresponds to is:
//
//	table Header {
//	  seed:long;
//	  generation_index:long;
//	  payload:[ubyte];
//	}
//	root_type Header;
package flat

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// Header is the fixed-layout wrapper around a gob+gzip Ecosystem payload:
// seed and generation_index read without touching the payload bytes at
// all.
type Header struct {
	_tab flatbuffers.Table
}

func GetRootAsHeader(buf []byte, offset flatbuffers.UOffsetT) *Header {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &Header{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *Header) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Header) Table() flatbuffers.Table { return rcv._tab }

func (rcv *Header) Seed() int64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetInt64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Header) GenerationIndex() int64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.GetInt64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Header) PayloadLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *Header) PayloadBytes() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o == 0 {
		return nil
	}
	l := rcv._tab.VectorLen(o)
	a := rcv._tab.Vector(o)
	return rcv._tab.Bytes[a : a+flatbuffers.UOffsetT(l)]
}

func HeaderStart(builder *flatbuffers.Builder) {
	builder.StartObject(3)
}

func HeaderAddSeed(builder *flatbuffers.Builder, seed int64) {
	builder.PrependInt64Slot(0, seed, 0)
}

func HeaderAddGenerationIndex(builder *flatbuffers.Builder, generationIndex int64) {
	builder.PrependInt64Slot(1, generationIndex, 0)
}

func HeaderAddPayload(builder *flatbuffers.Builder, payload flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(2, payload, 0)
}

func HeaderEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
