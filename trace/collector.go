package trace

import (
	"encoding/hex"
	"encoding/json"
	"strconv"

	"github.com/0xtrace/evmtrace/address"
	"github.com/0xtrace/evmtrace/word256"
	"github.com/pkg/errors"
)

// Collector is the append-only event log. Events are never reordered or
// removed; nextIndex() is implicit in Record*'s bookkeeping.
type Collector struct {
	events []Event
	next   uint64
}

// New returns an empty collector.
func New() *Collector {
	return &Collector{}
}

// NextIndex returns the index the next recorded event will receive,
// without recording anything.
func (c *Collector) NextIndex() uint64 {
	return c.next
}

// Len returns the number of recorded events.
func (c *Collector) Len() int {
	return len(c.events)
}

// Events returns the recorded events in order. The returned slice must
// not be mutated by the caller.
func (c *Collector) Events() []Event {
	return c.events
}

func (c *Collector) meta(pc, gasRemaining uint64) Meta {
	m := Meta{Index: c.next, PC: pc, GasRemaining: gasRemaining}
	c.next++
	return m
}

func (c *Collector) record(e Event) Event {
	c.events = append(c.events, e)
	return e
}

// RecordOpcodeStart appends an opcode.start event.
func (c *Collector) RecordOpcodeStart(pc, gasRemaining uint64, opcode byte, name string) OpcodeStart {
	e := OpcodeStart{Meta: c.meta(pc, gasRemaining), Opcode: opcode, Name: name}
	c.record(e)
	return e
}

// RecordStackPush appends a stack.push event.
func (c *Collector) RecordStackPush(pc, gasRemaining uint64, value word256.Word256) StackPush {
	e := StackPush{Meta: c.meta(pc, gasRemaining), Value: value}
	c.record(e)
	return e
}

// RecordStackPop appends a stack.pop event.
func (c *Collector) RecordStackPop(pc, gasRemaining uint64, value word256.Word256) StackPop {
	e := StackPop{Meta: c.meta(pc, gasRemaining), Value: value}
	c.record(e)
	return e
}

// RecordMemoryWrite appends a memory.write event.
func (c *Collector) RecordMemoryWrite(pc, gasRemaining, offset uint64, data []byte) MemoryWrite {
	cp := make([]byte, len(data))
	copy(cp, data)
	e := MemoryWrite{Meta: c.meta(pc, gasRemaining), Offset: offset, Data: cp}
	c.record(e)
	return e
}

// RecordMemoryRead appends a memory.read event.
func (c *Collector) RecordMemoryRead(pc, gasRemaining, offset, length uint64) MemoryRead {
	e := MemoryRead{Meta: c.meta(pc, gasRemaining), Offset: offset, Length: length}
	c.record(e)
	return e
}

// RecordStorageRead appends a storage.read event.
func (c *Collector) RecordStorageRead(pc, gasRemaining uint64, addr address.Address, key, value word256.Word256) StorageRead {
	e := StorageRead{Meta: c.meta(pc, gasRemaining), Address: addr, Key: key, Value: value}
	c.record(e)
	return e
}

// RecordStorageWrite appends a storage.write event.
func (c *Collector) RecordStorageWrite(pc, gasRemaining uint64, addr address.Address, key, value word256.Word256) StorageWrite {
	e := StorageWrite{Meta: c.meta(pc, gasRemaining), Address: addr, Key: key, Value: value}
	c.record(e)
	return e
}

// RecordGasCharge appends a gas.charge event.
func (c *Collector) RecordGasCharge(pc, gasRemaining, amount uint64, reason string) GasCharge {
	e := GasCharge{Meta: c.meta(pc, gasRemaining), Amount: amount, Reason: reason}
	c.record(e)
	return e
}

// RecordJump appends a jump event.
func (c *Collector) RecordJump(pc, gasRemaining, from, to uint64, conditional, taken bool) Jump {
	e := Jump{Meta: c.meta(pc, gasRemaining), From: from, To: to, Conditional: conditional, Taken: taken}
	c.record(e)
	return e
}

// RecordHalt appends the terminal halt event.
func (c *Collector) RecordHalt(pc, gasRemaining uint64, reason HaltReason) Halt {
	e := Halt{Meta: c.meta(pc, gasRemaining), Reason: reason}
	c.record(e)
	return e
}

// RecordLog appends a log event.
func (c *Collector) RecordLog(pc, gasRemaining uint64, addr address.Address, topics []word256.Word256, data []byte) Log {
	topicsCp := make([]word256.Word256, len(topics))
	copy(topicsCp, topics)
	dataCp := make([]byte, len(data))
	copy(dataCp, data)
	e := Log{Meta: c.meta(pc, gasRemaining), Address: addr, Topics: topicsCp, Data: dataCp}
	c.record(e)
	return e
}

// Clone returns an independent collector sharing no state with the
// original.
func (c *Collector) Clone() *Collector {
	cp := make([]Event, len(c.events))
	copy(cp, c.events)
	return &Collector{events: cp, next: c.next}
}

// ---- JSON encoding (spec §6) ----

func hexBytes(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

func decodeHexBytes(s string) ([]byte, error) {
	s = trimHexPrefix(s)
	return hex.DecodeString(s)
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

type wireEvent struct {
	Type         string `json:"type"`
	Index        uint64 `json:"index"`
	PC           uint64 `json:"pc"`
	GasRemaining string `json:"gasRemaining"`

	Opcode     *byte   `json:"opcode,omitempty"`
	OpcodeName string  `json:"opcodeName,omitempty"`
	Value      string  `json:"value,omitempty"`
	Offset     *uint64 `json:"offset,omitempty"`
	Length     *uint64 `json:"length,omitempty"`
	Data       string  `json:"data,omitempty"`
	Address    string  `json:"address,omitempty"`
	Key        string  `json:"key,omitempty"`
	Amount     string  `json:"amount,omitempty"`
	Reason     string  `json:"reason,omitempty"`
	From       *uint64 `json:"from,omitempty"`
	To         *uint64 `json:"to,omitempty"`
	Conditional *bool  `json:"conditional,omitempty"`
	Taken      *bool   `json:"taken,omitempty"`
	Topics     []string `json:"topics,omitempty"`
}

func ptr[T any](v T) *T { return &v }

func toWire(e Event) wireEvent {
	m := e.meta()
	w := wireEvent{
		Type:         string(e.Kind()),
		Index:        m.Index,
		PC:           m.PC,
		GasRemaining: strconv.FormatUint(m.GasRemaining, 10),
	}
	switch v := e.(type) {
	case OpcodeStart:
		w.Opcode = ptr(v.Opcode)
		w.OpcodeName = v.Name
	case StackPush:
		w.Value = v.Value.Hex()
	case StackPop:
		w.Value = v.Value.Hex()
	case MemoryWrite:
		w.Offset = ptr(v.Offset)
		w.Data = hexBytes(v.Data)
	case MemoryRead:
		w.Offset = ptr(v.Offset)
		w.Length = ptr(v.Length)
	case StorageRead:
		w.Address = v.Address.Hex()
		w.Key = v.Key.Hex()
		w.Value = v.Value.Hex()
	case StorageWrite:
		w.Address = v.Address.Hex()
		w.Key = v.Key.Hex()
		w.Value = v.Value.Hex()
	case GasCharge:
		w.Amount = strconv.FormatUint(v.Amount, 10)
		w.Reason = v.Reason
	case Jump:
		w.From = ptr(v.From)
		w.To = ptr(v.To)
		w.Conditional = ptr(v.Conditional)
		w.Taken = ptr(v.Taken)
	case Halt:
		w.Reason = string(v.Reason)
	case Log:
		w.Address = v.Address.Hex()
		w.Data = hexBytes(v.Data)
		topics := make([]string, len(v.Topics))
		for i, t := range v.Topics {
			topics[i] = t.Hex()
		}
		w.Topics = topics
	}
	return w
}

func fromWire(w wireEvent) (Event, error) {
	gasRemaining, err := strconv.ParseUint(w.GasRemaining, 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "invalid gasRemaining")
	}
	m := Meta{Index: w.Index, PC: w.PC, GasRemaining: gasRemaining}

	parseWord := func(s string) (word256.Word256, error) {
		return word256.FromHex(s)
	}
	parseAddr := func(s string) (address.Address, error) {
		return address.FromHex(s)
	}

	switch Kind(w.Type) {
	case KindOpcodeStart:
		var op byte
		if w.Opcode != nil {
			op = *w.Opcode
		}
		return OpcodeStart{Meta: m, Opcode: op, Name: w.OpcodeName}, nil
	case KindStackPush:
		v, err := parseWord(w.Value)
		if err != nil {
			return nil, err
		}
		return StackPush{Meta: m, Value: v}, nil
	case KindStackPop:
		v, err := parseWord(w.Value)
		if err != nil {
			return nil, err
		}
		return StackPop{Meta: m, Value: v}, nil
	case KindMemoryWrite:
		data, err := decodeHexBytes(w.Data)
		if err != nil {
			return nil, err
		}
		var offset uint64
		if w.Offset != nil {
			offset = *w.Offset
		}
		return MemoryWrite{Meta: m, Offset: offset, Data: data}, nil
	case KindMemoryRead:
		var offset, length uint64
		if w.Offset != nil {
			offset = *w.Offset
		}
		if w.Length != nil {
			length = *w.Length
		}
		return MemoryRead{Meta: m, Offset: offset, Length: length}, nil
	case KindStorageRead, KindStorageWrite:
		addr, err := parseAddr(w.Address)
		if err != nil {
			return nil, err
		}
		key, err := parseWord(w.Key)
		if err != nil {
			return nil, err
		}
		val, err := parseWord(w.Value)
		if err != nil {
			return nil, err
		}
		if Kind(w.Type) == KindStorageRead {
			return StorageRead{Meta: m, Address: addr, Key: key, Value: val}, nil
		}
		return StorageWrite{Meta: m, Address: addr, Key: key, Value: val}, nil
	case KindGasCharge:
		amount, err := strconv.ParseUint(w.Amount, 10, 64)
		if err != nil {
			return nil, errors.Wrap(err, "invalid gas.charge amount")
		}
		return GasCharge{Meta: m, Amount: amount, Reason: w.Reason}, nil
	case KindJump:
		var from, to uint64
		var conditional, taken bool
		if w.From != nil {
			from = *w.From
		}
		if w.To != nil {
			to = *w.To
		}
		if w.Conditional != nil {
			conditional = *w.Conditional
		}
		if w.Taken != nil {
			taken = *w.Taken
		}
		return Jump{Meta: m, From: from, To: to, Conditional: conditional, Taken: taken}, nil
	case KindHalt:
		return Halt{Meta: m, Reason: HaltReason(w.Reason)}, nil
	case KindLog:
		addr, err := parseAddr(w.Address)
		if err != nil {
			return nil, err
		}
		data, err := decodeHexBytes(w.Data)
		if err != nil {
			return nil, err
		}
		topics := make([]word256.Word256, len(w.Topics))
		for i, t := range w.Topics {
			wv, err := parseWord(t)
			if err != nil {
				return nil, err
			}
			topics[i] = wv
		}
		return Log{Meta: m, Address: addr, Topics: topics, Data: data}, nil
	default:
		return nil, errors.Errorf("unknown trace event type: %q", w.Type)
	}
}

// MarshalJSON encodes the collector as a JSON array of event objects
// per spec §6, in recorded order.
func (c *Collector) MarshalJSON() ([]byte, error) {
	wires := make([]wireEvent, len(c.events))
	for i, e := range c.events {
		wires[i] = toWire(e)
	}
	return json.Marshal(wires)
}

// UnmarshalJSON restores both the event list and the sequence counter
// (set to the length of the array) from the same shape MarshalJSON
// produces.
func (c *Collector) UnmarshalJSON(data []byte) error {
	var wires []wireEvent
	if err := json.Unmarshal(data, &wires); err != nil {
		return err
	}
	events := make([]Event, 0, len(wires))
	for _, w := range wires {
		e, err := fromWire(w)
		if err != nil {
			return err
		}
		events = append(events, e)
	}
	c.events = events
	c.next = uint64(len(events))
	return nil
}
