// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: moralwatch/v1/moralwatch.proto

package moralwatchv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type FieldState struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pg            float64                `protobuf:"fixed64,1,opt,name=pg,proto3" json:"pg,omitempty"`
	Pe            float64                `protobuf:"fixed64,2,opt,name=pe,proto3" json:"pe,omitempty"`
	D             float64                `protobuf:"fixed64,3,opt,name=d,proto3" json:"d,omitempty"`
	X             float64                `protobuf:"fixed64,4,opt,name=x,proto3" json:"x,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FieldState) Reset() {
	*x = FieldState{}
	mi := &file_moralwatch_v1_moralwatch_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FieldState) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FieldState) ProtoMessage() {}

func (x *FieldState) ProtoReflect() protoreflect.Message {
	mi := &file_moralwatch_v1_moralwatch_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FieldState.ProtoReflect.Descriptor instead.
func (*FieldState) Descriptor() ([]byte, []int) {
	return file_moralwatch_v1_moralwatch_proto_rawDescGZIP(), []int{0}
}

func (x *FieldState) GetPg() float64 {
	if x != nil {
		return x.Pg
	}
	return 0
}

func (x *FieldState) GetPe() float64 {
	if x != nil {
		return x.Pe
	}
	return 0
}

func (x *FieldState) GetD() float64 {
	if x != nil {
		return x.D
	}
	return 0
}

func (x *FieldState) GetX() float64 {
	if x != nil {
		return x.X
	}
	return 0
}

type EvalRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Text          string                 `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EvalRequest) Reset() {
	*x = EvalRequest{}
	mi := &file_moralwatch_v1_moralwatch_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EvalRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EvalRequest) ProtoMessage() {}

func (x *EvalRequest) ProtoReflect() protoreflect.Message {
	mi := &file_moralwatch_v1_moralwatch_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EvalRequest.ProtoReflect.Descriptor instead.
func (*EvalRequest) Descriptor() ([]byte, []int) {
	return file_moralwatch_v1_moralwatch_proto_rawDescGZIP(), []int{1}
}

func (x *EvalRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *EvalRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type EvalResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Seq           uint64                 `protobuf:"varint,2,opt,name=seq,proto3" json:"seq,omitempty"`
	Field         *FieldState            `protobuf:"bytes,3,opt,name=field,proto3" json:"field,omitempty"`
	Drift         float64                `protobuf:"fixed64,4,opt,name=drift,proto3" json:"drift,omitempty"`
	Shock         bool                   `protobuf:"varint,5,opt,name=shock,proto3" json:"shock,omitempty"`
	Violation     string                 `protobuf:"bytes,6,opt,name=violation,proto3" json:"violation,omitempty"`
	SessionState  string                 `protobuf:"bytes,7,opt,name=session_state,json=sessionState,proto3" json:"session_state,omitempty"`
	Rejected      bool                   `protobuf:"varint,8,opt,name=rejected,proto3" json:"rejected,omitempty"`
	LockReason    string                 `protobuf:"bytes,9,opt,name=lock_reason,json=lockReason,proto3" json:"lock_reason,omitempty"`
	Notes         []string               `protobuf:"bytes,10,rep,name=notes,proto3" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EvalResponse) Reset() {
	*x = EvalResponse{}
	mi := &file_moralwatch_v1_moralwatch_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EvalResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EvalResponse) ProtoMessage() {}

func (x *EvalResponse) ProtoReflect() protoreflect.Message {
	mi := &file_moralwatch_v1_moralwatch_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EvalResponse.ProtoReflect.Descriptor instead.
func (*EvalResponse) Descriptor() ([]byte, []int) {
	return file_moralwatch_v1_moralwatch_proto_rawDescGZIP(), []int{2}
}

func (x *EvalResponse) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *EvalResponse) GetSeq() uint64 {
	if x != nil {
		return x.Seq
	}
	return 0
}

func (x *EvalResponse) GetField() *FieldState {
	if x != nil {
		return x.Field
	}
	return nil
}

func (x *EvalResponse) GetDrift() float64 {
	if x != nil {
		return x.Drift
	}
	return 0
}

func (x *EvalResponse) GetShock() bool {
	if x != nil {
		return x.Shock
	}
	return false
}

func (x *EvalResponse) GetViolation() string {
	if x != nil {
		return x.Violation
	}
	return ""
}

func (x *EvalResponse) GetSessionState() string {
	if x != nil {
		return x.SessionState
	}
	return ""
}

func (x *EvalResponse) GetRejected() bool {
	if x != nil {
		return x.Rejected
	}
	return false
}

func (x *EvalResponse) GetLockReason() string {
	if x != nil {
		return x.LockReason
	}
	return ""
}

func (x *EvalResponse) GetNotes() []string {
	if x != nil {
		return x.Notes
	}
	return nil
}

type ReinitRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReinitRequest) Reset() {
	*x = ReinitRequest{}
	mi := &file_moralwatch_v1_moralwatch_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReinitRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReinitRequest) ProtoMessage() {}

func (x *ReinitRequest) ProtoReflect() protoreflect.Message {
	mi := &file_moralwatch_v1_moralwatch_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReinitRequest.ProtoReflect.Descriptor instead.
func (*ReinitRequest) Descriptor() ([]byte, []int) {
	return file_moralwatch_v1_moralwatch_proto_rawDescGZIP(), []int{3}
}

type ReinitResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	LockState     string                 `protobuf:"bytes,2,opt,name=lock_state,json=lockState,proto3" json:"lock_state,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,3,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReinitResponse) Reset() {
	*x = ReinitResponse{}
	mi := &file_moralwatch_v1_moralwatch_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReinitResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReinitResponse) ProtoMessage() {}

func (x *ReinitResponse) ProtoReflect() protoreflect.Message {
	mi := &file_moralwatch_v1_moralwatch_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReinitResponse.ProtoReflect.Descriptor instead.
func (*ReinitResponse) Descriptor() ([]byte, []int) {
	return file_moralwatch_v1_moralwatch_proto_rawDescGZIP(), []int{4}
}

func (x *ReinitResponse) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *ReinitResponse) GetLockState() string {
	if x != nil {
		return x.LockState
	}
	return ""
}

func (x *ReinitResponse) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ReadTrailRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReadTrailRequest) Reset() {
	*x = ReadTrailRequest{}
	mi := &file_moralwatch_v1_moralwatch_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReadTrailRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReadTrailRequest) ProtoMessage() {}

func (x *ReadTrailRequest) ProtoReflect() protoreflect.Message {
	mi := &file_moralwatch_v1_moralwatch_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReadTrailRequest.ProtoReflect.Descriptor instead.
func (*ReadTrailRequest) Descriptor() ([]byte, []int) {
	return file_moralwatch_v1_moralwatch_proto_rawDescGZIP(), []int{5}
}

func (x *ReadTrailRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type TrailRecord struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Seq           uint64                 `protobuf:"varint,2,opt,name=seq,proto3" json:"seq,omitempty"`
	Timestamp     string                 `protobuf:"bytes,3,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	InputSha256   string                 `protobuf:"bytes,4,opt,name=input_sha256,json=inputSha256,proto3" json:"input_sha256,omitempty"`
	Field         *FieldState            `protobuf:"bytes,5,opt,name=field,proto3" json:"field,omitempty"`
	Drift         float64                `protobuf:"fixed64,6,opt,name=drift,proto3" json:"drift,omitempty"`
	Shock         bool                   `protobuf:"varint,7,opt,name=shock,proto3" json:"shock,omitempty"`
	Violation     string                 `protobuf:"bytes,8,opt,name=violation,proto3" json:"violation,omitempty"`
	SessionState  string                 `protobuf:"bytes,9,opt,name=session_state,json=sessionState,proto3" json:"session_state,omitempty"`
	LockReason    string                 `protobuf:"bytes,10,opt,name=lock_reason,json=lockReason,proto3" json:"lock_reason,omitempty"`
	Notes         []string               `protobuf:"bytes,11,rep,name=notes,proto3" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TrailRecord) Reset() {
	*x = TrailRecord{}
	mi := &file_moralwatch_v1_moralwatch_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TrailRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TrailRecord) ProtoMessage() {}

func (x *TrailRecord) ProtoReflect() protoreflect.Message {
	mi := &file_moralwatch_v1_moralwatch_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TrailRecord.ProtoReflect.Descriptor instead.
func (*TrailRecord) Descriptor() ([]byte, []int) {
	return file_moralwatch_v1_moralwatch_proto_rawDescGZIP(), []int{6}
}

func (x *TrailRecord) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *TrailRecord) GetSeq() uint64 {
	if x != nil {
		return x.Seq
	}
	return 0
}

func (x *TrailRecord) GetTimestamp() string {
	if x != nil {
		return x.Timestamp
	}
	return ""
}

func (x *TrailRecord) GetInputSha256() string {
	if x != nil {
		return x.InputSha256
	}
	return ""
}

func (x *TrailRecord) GetField() *FieldState {
	if x != nil {
		return x.Field
	}
	return nil
}

func (x *TrailRecord) GetDrift() float64 {
	if x != nil {
		return x.Drift
	}
	return 0
}

func (x *TrailRecord) GetShock() bool {
	if x != nil {
		return x.Shock
	}
	return false
}

func (x *TrailRecord) GetViolation() string {
	if x != nil {
		return x.Violation
	}
	return ""
}

func (x *TrailRecord) GetSessionState() string {
	if x != nil {
		return x.SessionState
	}
	return ""
}

func (x *TrailRecord) GetLockReason() string {
	if x != nil {
		return x.LockReason
	}
	return ""
}

func (x *TrailRecord) GetNotes() []string {
	if x != nil {
		return x.Notes
	}
	return nil
}

type ReadTrailResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Records       []*TrailRecord         `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReadTrailResponse) Reset() {
	*x = ReadTrailResponse{}
	mi := &file_moralwatch_v1_moralwatch_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReadTrailResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReadTrailResponse) ProtoMessage() {}

func (x *ReadTrailResponse) ProtoReflect() protoreflect.Message {
	mi := &file_moralwatch_v1_moralwatch_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReadTrailResponse.ProtoReflect.Descriptor instead.
func (*ReadTrailResponse) Descriptor() ([]byte, []int) {
	return file_moralwatch_v1_moralwatch_proto_rawDescGZIP(), []int{7}
}

func (x *ReadTrailResponse) GetRecords() []*TrailRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

type SummaryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SummaryRequest) Reset() {
	*x = SummaryRequest{}
	mi := &file_moralwatch_v1_moralwatch_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SummaryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SummaryRequest) ProtoMessage() {}

func (x *SummaryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_moralwatch_v1_moralwatch_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SummaryRequest.ProtoReflect.Descriptor instead.
func (*SummaryRequest) Descriptor() ([]byte, []int) {
	return file_moralwatch_v1_moralwatch_proto_rawDescGZIP(), []int{8}
}

func (x *SummaryRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type SummaryResponse struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	SessionId           string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	EventsAnalyzed      int64                  `protobuf:"varint,2,opt,name=events_analyzed,json=eventsAnalyzed,proto3" json:"events_analyzed,omitempty"`
	Shocks              int64                  `protobuf:"varint,3,opt,name=shocks,proto3" json:"shocks,omitempty"`
	CircularityWarnings int64                  `protobuf:"varint,4,opt,name=circularity_warnings,json=circularityWarnings,proto3" json:"circularity_warnings,omitempty"`
	HardLocks           int64                  `protobuf:"varint,5,opt,name=hard_locks,json=hardLocks,proto3" json:"hard_locks,omitempty"`
	MeanDrift           float64                `protobuf:"fixed64,6,opt,name=mean_drift,json=meanDrift,proto3" json:"mean_drift,omitempty"`
	FinalX              float64                `protobuf:"fixed64,7,opt,name=final_x,json=finalX,proto3" json:"final_x,omitempty"`
	FinalStatus         string                 `protobuf:"bytes,8,opt,name=final_status,json=finalStatus,proto3" json:"final_status,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *SummaryResponse) Reset() {
	*x = SummaryResponse{}
	mi := &file_moralwatch_v1_moralwatch_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SummaryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SummaryResponse) ProtoMessage() {}

func (x *SummaryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_moralwatch_v1_moralwatch_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SummaryResponse.ProtoReflect.Descriptor instead.
func (*SummaryResponse) Descriptor() ([]byte, []int) {
	return file_moralwatch_v1_moralwatch_proto_rawDescGZIP(), []int{9}
}

func (x *SummaryResponse) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *SummaryResponse) GetEventsAnalyzed() int64 {
	if x != nil {
		return x.EventsAnalyzed
	}
	return 0
}

func (x *SummaryResponse) GetShocks() int64 {
	if x != nil {
		return x.Shocks
	}
	return 0
}

func (x *SummaryResponse) GetCircularityWarnings() int64 {
	if x != nil {
		return x.CircularityWarnings
	}
	return 0
}

func (x *SummaryResponse) GetHardLocks() int64 {
	if x != nil {
		return x.HardLocks
	}
	return 0
}

func (x *SummaryResponse) GetMeanDrift() float64 {
	if x != nil {
		return x.MeanDrift
	}
	return 0
}

func (x *SummaryResponse) GetFinalX() float64 {
	if x != nil {
		return x.FinalX
	}
	return 0
}

func (x *SummaryResponse) GetFinalStatus() string {
	if x != nil {
		return x.FinalStatus
	}
	return ""
}

type ListSessionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSessionsRequest) Reset() {
	*x = ListSessionsRequest{}
	mi := &file_moralwatch_v1_moralwatch_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSessionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSessionsRequest) ProtoMessage() {}

func (x *ListSessionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_moralwatch_v1_moralwatch_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSessionsRequest.ProtoReflect.Descriptor instead.
func (*ListSessionsRequest) Descriptor() ([]byte, []int) {
	return file_moralwatch_v1_moralwatch_proto_rawDescGZIP(), []int{10}
}

type SessionInfo struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	LockState     string                 `protobuf:"bytes,2,opt,name=lock_state,json=lockState,proto3" json:"lock_state,omitempty"`
	LockReason    string                 `protobuf:"bytes,3,opt,name=lock_reason,json=lockReason,proto3" json:"lock_reason,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	LockedAt      string                 `protobuf:"bytes,5,opt,name=locked_at,json=lockedAt,proto3" json:"locked_at,omitempty"`
	Seq           uint64                 `protobuf:"varint,6,opt,name=seq,proto3" json:"seq,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SessionInfo) Reset() {
	*x = SessionInfo{}
	mi := &file_moralwatch_v1_moralwatch_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SessionInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SessionInfo) ProtoMessage() {}

func (x *SessionInfo) ProtoReflect() protoreflect.Message {
	mi := &file_moralwatch_v1_moralwatch_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SessionInfo.ProtoReflect.Descriptor instead.
func (*SessionInfo) Descriptor() ([]byte, []int) {
	return file_moralwatch_v1_moralwatch_proto_rawDescGZIP(), []int{11}
}

func (x *SessionInfo) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *SessionInfo) GetLockState() string {
	if x != nil {
		return x.LockState
	}
	return ""
}

func (x *SessionInfo) GetLockReason() string {
	if x != nil {
		return x.LockReason
	}
	return ""
}

func (x *SessionInfo) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *SessionInfo) GetLockedAt() string {
	if x != nil {
		return x.LockedAt
	}
	return ""
}

func (x *SessionInfo) GetSeq() uint64 {
	if x != nil {
		return x.Seq
	}
	return 0
}

type ListSessionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sessions      []*SessionInfo         `protobuf:"bytes,1,rep,name=sessions,proto3" json:"sessions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSessionsResponse) Reset() {
	*x = ListSessionsResponse{}
	mi := &file_moralwatch_v1_moralwatch_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSessionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSessionsResponse) ProtoMessage() {}

func (x *ListSessionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_moralwatch_v1_moralwatch_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSessionsResponse.ProtoReflect.Descriptor instead.
func (*ListSessionsResponse) Descriptor() ([]byte, []int) {
	return file_moralwatch_v1_moralwatch_proto_rawDescGZIP(), []int{12}
}

func (x *ListSessionsResponse) GetSessions() []*SessionInfo {
	if x != nil {
		return x.Sessions
	}
	return nil
}

var File_moralwatch_v1_moralwatch_proto protoreflect.FileDescriptor

const file_moralwatch_v1_moralwatch_proto_rawDesc = "" +
	"\n" +
	"\x1emoralwatch/v1/moralwatch.proto\x12\rmoralwatch.v1\"H\n" +
	"\n" +
	"FieldState\x12\x0e\n" +
	"\x02pg\x18\x01 \x01(\x01R\x02pg\x12\x0e\n" +
	"\x02pe\x18\x02 \x01(\x01R\x02pe\x12\f\n" +
	"\x01d\x18\x03 \x01(\x01R\x01d\x12\f\n" +
	"\x01x\x18\x04 \x01(\x01R\x01x\"@\n" +
	"\vEvalRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x12\n" +
	"\x04text\x18\x02 \x01(\tR\x04text\"\xb2\x02\n" +
	"\fEvalResponse\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x10\n" +
	"\x03seq\x18\x02 \x01(\x04R\x03seq\x12/\n" +
	"\x05field\x18\x03 \x01(\v2\x19.moralwatch.v1.FieldStateR\x05field\x12\x14\n" +
	"\x05drift\x18\x04 \x01(\x01R\x05drift\x12\x14\n" +
	"\x05shock\x18\x05 \x01(\bR\x05shock\x12\x1c\n" +
	"\tviolation\x18\x06 \x01(\tR\tviolation\x12#\n" +
	"\rsession_state\x18\a \x01(\tR\fsessionState\x12\x1a\n" +
	"\brejected\x18\b \x01(\bR\brejected\x12\x1f\n" +
	"\vlock_reason\x18\t \x01(\tR\n" +
	"lockReason\x12\x14\n" +
	"\x05notes\x18\n" +
	" \x03(\tR\x05notes\"\x0f\n" +
	"\rReinitRequest\"m\n" +
	"\x0eReinitResponse\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x1d\n" +
	"\n" +
	"lock_state\x18\x02 \x01(\tR\tlockState\x12\x1d\n" +
	"\n" +
	"created_at\x18\x03 \x01(\tR\tcreatedAt\"1\n" +
	"\x10ReadTrailRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"\xd6\x02\n" +
	"\vTrailRecord\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x10\n" +
	"\x03seq\x18\x02 \x01(\x04R\x03seq\x12\x1c\n" +
	"\ttimestamp\x18\x03 \x01(\tR\ttimestamp\x12!\n" +
	"\finput_sha256\x18\x04 \x01(\tR\vinputSha256\x12/\n" +
	"\x05field\x18\x05 \x01(\v2\x19.moralwatch.v1.FieldStateR\x05field\x12\x14\n" +
	"\x05drift\x18\x06 \x01(\x01R\x05drift\x12\x14\n" +
	"\x05shock\x18\a \x01(\bR\x05shock\x12\x1c\n" +
	"\tviolation\x18\b \x01(\tR\tviolation\x12#\n" +
	"\rsession_state\x18\t \x01(\tR\fsessionState\x12\x1f\n" +
	"\vlock_reason\x18\n" +
	" \x01(\tR\n" +
	"lockReason\x12\x14\n" +
	"\x05notes\x18\v \x03(\tR\x05notes\"I\n" +
	"\x11ReadTrailResponse\x124\n" +
	"\arecords\x18\x01 \x03(\v2\x1a.moralwatch.v1.TrailRecordR\arecords\"/\n" +
	"\x0eSummaryRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"\x9e\x02\n" +
	"\x0fSummaryResponse\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12'\n" +
	"\x0fevents_analyzed\x18\x02 \x01(\x03R\x0eeventsAnalyzed\x12\x16\n" +
	"\x06shocks\x18\x03 \x01(\x03R\x06shocks\x121\n" +
	"\x14circularity_warnings\x18\x04 \x01(\x03R\x13circularityWarnings\x12\x1d\n" +
	"\n" +
	"hard_locks\x18\x05 \x01(\x03R\thardLocks\x12\x1d\n" +
	"\n" +
	"mean_drift\x18\x06 \x01(\x01R\tmeanDrift\x12\x17\n" +
	"\afinal_x\x18\a \x01(\x01R\x06finalX\x12!\n" +
	"\ffinal_status\x18\b \x01(\tR\vfinalStatus\"\x15\n" +
	"\x13ListSessionsRequest\"\xba\x01\n" +
	"\vSessionInfo\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x1d\n" +
	"\n" +
	"lock_state\x18\x02 \x01(\tR\tlockState\x12\x1f\n" +
	"\vlock_reason\x18\x03 \x01(\tR\n" +
	"lockReason\x12\x1d\n" +
	"\n" +
	"created_at\x18\x04 \x01(\tR\tcreatedAt\x12\x1b\n" +
	"\tlocked_at\x18\x05 \x01(\tR\blockedAt\x12\x10\n" +
	"\x03seq\x18\x06 \x01(\x04R\x03seq\"N\n" +
	"\x14ListSessionsResponse\x126\n" +
	"\bsessions\x18\x01 \x03(\v2\x1a.moralwatch.v1.SessionInfoR\bsessions2\x98\x03\n" +
	"\x11MoralwatchService\x12C\n" +
	"\bEvaluate\x12\x1a.moralwatch.v1.EvalRequest\x1a\x1b.moralwatch.v1.EvalResponse\x12K\n" +
	"\fReinitialize\x12\x1c.moralwatch.v1.ReinitRequest\x1a\x1d.moralwatch.v1.ReinitResponse\x12N\n" +
	"\tReadTrail\x12\x1f.moralwatch.v1.ReadTrailRequest\x1a .moralwatch.v1.ReadTrailResponse\x12H\n" +
	"\aSummary\x12\x1d.moralwatch.v1.SummaryRequest\x1a\x1e.moralwatch.v1.SummaryResponse\x12W\n" +
	"\fListSessions\x12\".moralwatch.v1.ListSessionsRequest\x1a#.moralwatch.v1.ListSessionsResponseBEZCgithub.com/ppiankov/moralwatch/api/proto/moralwatch/v1;moralwatchv1b\x06proto3"

var (
	file_moralwatch_v1_moralwatch_proto_rawDescOnce sync.Once
	file_moralwatch_v1_moralwatch_proto_rawDescData []byte
)

func file_moralwatch_v1_moralwatch_proto_rawDescGZIP() []byte {
	file_moralwatch_v1_moralwatch_proto_rawDescOnce.Do(func() {
		file_moralwatch_v1_moralwatch_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_moralwatch_v1_moralwatch_proto_rawDesc), len(file_moralwatch_v1_moralwatch_proto_rawDesc)))
	})
	return file_moralwatch_v1_moralwatch_proto_rawDescData
}

var file_moralwatch_v1_moralwatch_proto_msgTypes = make([]protoimpl.MessageInfo, 13)
var file_moralwatch_v1_moralwatch_proto_goTypes = []any{
	(*FieldState)(nil),           // 0: moralwatch.v1.FieldState
	(*EvalRequest)(nil),          // 1: moralwatch.v1.EvalRequest
	(*EvalResponse)(nil),         // 2: moralwatch.v1.EvalResponse
	(*ReinitRequest)(nil),        // 3: moralwatch.v1.ReinitRequest
	(*ReinitResponse)(nil),       // 4: moralwatch.v1.ReinitResponse
	(*ReadTrailRequest)(nil),     // 5: moralwatch.v1.ReadTrailRequest
	(*TrailRecord)(nil),          // 6: moralwatch.v1.TrailRecord
	(*ReadTrailResponse)(nil),    // 7: moralwatch.v1.ReadTrailResponse
	(*SummaryRequest)(nil),       // 8: moralwatch.v1.SummaryRequest
	(*SummaryResponse)(nil),      // 9: moralwatch.v1.SummaryResponse
	(*ListSessionsRequest)(nil),  // 10: moralwatch.v1.ListSessionsRequest
	(*SessionInfo)(nil),          // 11: moralwatch.v1.SessionInfo
	(*ListSessionsResponse)(nil), // 12: moralwatch.v1.ListSessionsResponse
}
var file_moralwatch_v1_moralwatch_proto_depIdxs = []int32{
	0,  // 0: moralwatch.v1.EvalResponse.field:type_name -> moralwatch.v1.FieldState
	0,  // 1: moralwatch.v1.TrailRecord.field:type_name -> moralwatch.v1.FieldState
	6,  // 2: moralwatch.v1.ReadTrailResponse.records:type_name -> moralwatch.v1.TrailRecord
	11, // 3: moralwatch.v1.ListSessionsResponse.sessions:type_name -> moralwatch.v1.SessionInfo
	1,  // 4: moralwatch.v1.MoralwatchService.Evaluate:input_type -> moralwatch.v1.EvalRequest
	3,  // 5: moralwatch.v1.MoralwatchService.Reinitialize:input_type -> moralwatch.v1.ReinitRequest
	5,  // 6: moralwatch.v1.MoralwatchService.ReadTrail:input_type -> moralwatch.v1.ReadTrailRequest
	8,  // 7: moralwatch.v1.MoralwatchService.Summary:input_type -> moralwatch.v1.SummaryRequest
	10, // 8: moralwatch.v1.MoralwatchService.ListSessions:input_type -> moralwatch.v1.ListSessionsRequest
	2,  // 9: moralwatch.v1.MoralwatchService.Evaluate:output_type -> moralwatch.v1.EvalResponse
	4,  // 10: moralwatch.v1.MoralwatchService.Reinitialize:output_type -> moralwatch.v1.ReinitResponse
	7,  // 11: moralwatch.v1.MoralwatchService.ReadTrail:output_type -> moralwatch.v1.ReadTrailResponse
	9,  // 12: moralwatch.v1.MoralwatchService.Summary:output_type -> moralwatch.v1.SummaryResponse
	12, // 13: moralwatch.v1.MoralwatchService.ListSessions:output_type -> moralwatch.v1.ListSessionsResponse
	9,  // [9:14] is the sub-list for method output_type
	4,  // [4:9] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_moralwatch_v1_moralwatch_proto_init() }
func file_moralwatch_v1_moralwatch_proto_init() {
	if File_moralwatch_v1_moralwatch_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_moralwatch_v1_moralwatch_proto_rawDesc), len(file_moralwatch_v1_moralwatch_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   13,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_moralwatch_v1_moralwatch_proto_goTypes,
		DependencyIndexes: file_moralwatch_v1_moralwatch_proto_depIdxs,
		MessageInfos:      file_moralwatch_v1_moralwatch_proto_msgTypes,
	}.Build()
	File_moralwatch_v1_moralwatch_proto = out.File
	file_moralwatch_v1_moralwatch_proto_goTypes = nil
	file_moralwatch_v1_moralwatch_proto_depIdxs = nil
}
