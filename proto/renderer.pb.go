// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: renderer.proto

package proto

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

type RenderPageRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	Url       string                 `protobuf:"bytes,1,opt,name=url,proto3" json:"url,omitempty"`
	TimeoutMs int32                  `protobuf:"varint,2,opt,name=timeout_ms,json=timeoutMs,proto3" json:"timeout_ms,omitempty"`
	// Wait for network idle before capturing.
	WaitNetworkIdle bool `protobuf:"varint,3,opt,name=wait_network_idle,json=waitNetworkIdle,proto3" json:"wait_network_idle,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *RenderPageRequest) Reset() {
	*x = RenderPageRequest{}
	mi := &file_renderer_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RenderPageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RenderPageRequest) ProtoMessage() {}

func (x *RenderPageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_renderer_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RenderPageRequest.ProtoReflect.Descriptor instead.
func (*RenderPageRequest) Descriptor() ([]byte, []int) {
	return file_renderer_proto_rawDescGZIP(), []int{0}
}

func (x *RenderPageRequest) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *RenderPageRequest) GetTimeoutMs() int32 {
	if x != nil {
		return x.TimeoutMs
	}
	return 0
}

func (x *RenderPageRequest) GetWaitNetworkIdle() bool {
	if x != nil {
		return x.WaitNetworkIdle
	}
	return false
}

type AssetRef struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Url   string                 `protobuf:"bytes,1,opt,name=url,proto3" json:"url,omitempty"`
	// html, css, js, image, font
	AssetClass string `protobuf:"bytes,2,opt,name=asset_class,json=assetClass,proto3" json:"asset_class,omitempty"`
	Bytes      int64  `protobuf:"varint,3,opt,name=bytes,proto3" json:"bytes,omitempty"`
	// For images: whether this is the largest above-the-fold candidate.
	LcpCandidate  bool `protobuf:"varint,4,opt,name=lcp_candidate,json=lcpCandidate,proto3" json:"lcp_candidate,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AssetRef) Reset() {
	*x = AssetRef{}
	mi := &file_renderer_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AssetRef) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AssetRef) ProtoMessage() {}

func (x *AssetRef) ProtoReflect() protoreflect.Message {
	mi := &file_renderer_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AssetRef.ProtoReflect.Descriptor instead.
func (*AssetRef) Descriptor() ([]byte, []int) {
	return file_renderer_proto_rawDescGZIP(), []int{1}
}

func (x *AssetRef) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *AssetRef) GetAssetClass() string {
	if x != nil {
		return x.AssetClass
	}
	return ""
}

func (x *AssetRef) GetBytes() int64 {
	if x != nil {
		return x.Bytes
	}
	return 0
}

func (x *AssetRef) GetLcpCandidate() bool {
	if x != nil {
		return x.LcpCandidate
	}
	return false
}

type InteractiveElement struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// slider, accordion, dropdown, form, video
	Kind            string `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`
	Selector        string `protobuf:"bytes,2,opt,name=selector,proto3" json:"selector,omitempty"`
	JqueryDependent bool   `protobuf:"varint,3,opt,name=jquery_dependent,json=jqueryDependent,proto3" json:"jquery_dependent,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *InteractiveElement) Reset() {
	*x = InteractiveElement{}
	mi := &file_renderer_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InteractiveElement) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InteractiveElement) ProtoMessage() {}

func (x *InteractiveElement) ProtoReflect() protoreflect.Message {
	mi := &file_renderer_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InteractiveElement.ProtoReflect.Descriptor instead.
func (*InteractiveElement) Descriptor() ([]byte, []int) {
	return file_renderer_proto_rawDescGZIP(), []int{2}
}

func (x *InteractiveElement) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *InteractiveElement) GetSelector() string {
	if x != nil {
		return x.Selector
	}
	return ""
}

func (x *InteractiveElement) GetJqueryDependent() bool {
	if x != nil {
		return x.JqueryDependent
	}
	return false
}

type RenderPageResponse struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	Html                string                 `protobuf:"bytes,1,opt,name=html,proto3" json:"html,omitempty"`
	Links               []string               `protobuf:"bytes,2,rep,name=links,proto3" json:"links,omitempty"`
	Assets              []*AssetRef            `protobuf:"bytes,3,rep,name=assets,proto3" json:"assets,omitempty"`
	InteractiveElements []*InteractiveElement  `protobuf:"bytes,4,rep,name=interactive_elements,json=interactiveElements,proto3" json:"interactive_elements,omitempty"`
	ClassNames          []string               `protobuf:"bytes,5,rep,name=class_names,json=classNames,proto3" json:"class_names,omitempty"`
	ThirdPartyOrigins   []string               `protobuf:"bytes,6,rep,name=third_party_origins,json=thirdPartyOrigins,proto3" json:"third_party_origins,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *RenderPageResponse) Reset() {
	*x = RenderPageResponse{}
	mi := &file_renderer_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RenderPageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RenderPageResponse) ProtoMessage() {}

func (x *RenderPageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_renderer_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RenderPageResponse.ProtoReflect.Descriptor instead.
func (*RenderPageResponse) Descriptor() ([]byte, []int) {
	return file_renderer_proto_rawDescGZIP(), []int{3}
}

func (x *RenderPageResponse) GetHtml() string {
	if x != nil {
		return x.Html
	}
	return ""
}

func (x *RenderPageResponse) GetLinks() []string {
	if x != nil {
		return x.Links
	}
	return nil
}

func (x *RenderPageResponse) GetAssets() []*AssetRef {
	if x != nil {
		return x.Assets
	}
	return nil
}

func (x *RenderPageResponse) GetInteractiveElements() []*InteractiveElement {
	if x != nil {
		return x.InteractiveElements
	}
	return nil
}

func (x *RenderPageResponse) GetClassNames() []string {
	if x != nil {
		return x.ClassNames
	}
	return nil
}

func (x *RenderPageResponse) GetThirdPartyOrigins() []string {
	if x != nil {
		return x.ThirdPartyOrigins
	}
	return nil
}

type ScreenshotRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Url   string                 `protobuf:"bytes,1,opt,name=url,proto3" json:"url,omitempty"`
	// mobile, tablet, desktop
	Viewport      string `protobuf:"bytes,2,opt,name=viewport,proto3" json:"viewport,omitempty"`
	TimeoutMs     int32  `protobuf:"varint,3,opt,name=timeout_ms,json=timeoutMs,proto3" json:"timeout_ms,omitempty"`
	FullPage      bool   `protobuf:"varint,4,opt,name=full_page,json=fullPage,proto3" json:"full_page,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScreenshotRequest) Reset() {
	*x = ScreenshotRequest{}
	mi := &file_renderer_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScreenshotRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScreenshotRequest) ProtoMessage() {}

func (x *ScreenshotRequest) ProtoReflect() protoreflect.Message {
	mi := &file_renderer_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScreenshotRequest.ProtoReflect.Descriptor instead.
func (*ScreenshotRequest) Descriptor() ([]byte, []int) {
	return file_renderer_proto_rawDescGZIP(), []int{4}
}

func (x *ScreenshotRequest) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *ScreenshotRequest) GetViewport() string {
	if x != nil {
		return x.Viewport
	}
	return ""
}

func (x *ScreenshotRequest) GetTimeoutMs() int32 {
	if x != nil {
		return x.TimeoutMs
	}
	return 0
}

func (x *ScreenshotRequest) GetFullPage() bool {
	if x != nil {
		return x.FullPage
	}
	return false
}

type ScreenshotResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Png           []byte                 `protobuf:"bytes,1,opt,name=png,proto3" json:"png,omitempty"`
	Width         int32                  `protobuf:"varint,2,opt,name=width,proto3" json:"width,omitempty"`
	Height        int32                  `protobuf:"varint,3,opt,name=height,proto3" json:"height,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScreenshotResponse) Reset() {
	*x = ScreenshotResponse{}
	mi := &file_renderer_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScreenshotResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScreenshotResponse) ProtoMessage() {}

func (x *ScreenshotResponse) ProtoReflect() protoreflect.Message {
	mi := &file_renderer_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScreenshotResponse.ProtoReflect.Descriptor instead.
func (*ScreenshotResponse) Descriptor() ([]byte, []int) {
	return file_renderer_proto_rawDescGZIP(), []int{5}
}

func (x *ScreenshotResponse) GetPng() []byte {
	if x != nil {
		return x.Png
	}
	return nil
}

func (x *ScreenshotResponse) GetWidth() int32 {
	if x != nil {
		return x.Width
	}
	return 0
}

func (x *ScreenshotResponse) GetHeight() int32 {
	if x != nil {
		return x.Height
	}
	return 0
}

type InteractionStep struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// click, type, scroll, hover, wait
	Action        string `protobuf:"bytes,1,opt,name=action,proto3" json:"action,omitempty"`
	Selector      string `protobuf:"bytes,2,opt,name=selector,proto3" json:"selector,omitempty"`
	Value         string `protobuf:"bytes,3,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InteractionStep) Reset() {
	*x = InteractionStep{}
	mi := &file_renderer_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InteractionStep) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InteractionStep) ProtoMessage() {}

func (x *InteractionStep) ProtoReflect() protoreflect.Message {
	mi := &file_renderer_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InteractionStep.ProtoReflect.Descriptor instead.
func (*InteractionStep) Descriptor() ([]byte, []int) {
	return file_renderer_proto_rawDescGZIP(), []int{6}
}

func (x *InteractionStep) GetAction() string {
	if x != nil {
		return x.Action
	}
	return ""
}

func (x *InteractionStep) GetSelector() string {
	if x != nil {
		return x.Selector
	}
	return ""
}

func (x *InteractionStep) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

type ReplayInteractionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Url           string                 `protobuf:"bytes,1,opt,name=url,proto3" json:"url,omitempty"`
	Steps         []*InteractionStep     `protobuf:"bytes,2,rep,name=steps,proto3" json:"steps,omitempty"`
	TimeoutMs     int32                  `protobuf:"varint,3,opt,name=timeout_ms,json=timeoutMs,proto3" json:"timeout_ms,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReplayInteractionRequest) Reset() {
	*x = ReplayInteractionRequest{}
	mi := &file_renderer_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReplayInteractionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReplayInteractionRequest) ProtoMessage() {}

func (x *ReplayInteractionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_renderer_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReplayInteractionRequest.ProtoReflect.Descriptor instead.
func (*ReplayInteractionRequest) Descriptor() ([]byte, []int) {
	return file_renderer_proto_rawDescGZIP(), []int{7}
}

func (x *ReplayInteractionRequest) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *ReplayInteractionRequest) GetSteps() []*InteractionStep {
	if x != nil {
		return x.Steps
	}
	return nil
}

func (x *ReplayInteractionRequest) GetTimeoutMs() int32 {
	if x != nil {
		return x.TimeoutMs
	}
	return 0
}

type ReplayInteractionResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Success        bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	FailedSelector string                 `protobuf:"bytes,2,opt,name=failed_selector,json=failedSelector,proto3" json:"failed_selector,omitempty"`
	Error          string                 `protobuf:"bytes,3,opt,name=error,proto3" json:"error,omitempty"`
	ConsoleErrors  []string               `protobuf:"bytes,4,rep,name=console_errors,json=consoleErrors,proto3" json:"console_errors,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ReplayInteractionResponse) Reset() {
	*x = ReplayInteractionResponse{}
	mi := &file_renderer_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReplayInteractionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReplayInteractionResponse) ProtoMessage() {}

func (x *ReplayInteractionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_renderer_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReplayInteractionResponse.ProtoReflect.Descriptor instead.
func (*ReplayInteractionResponse) Descriptor() ([]byte, []int) {
	return file_renderer_proto_rawDescGZIP(), []int{8}
}

func (x *ReplayInteractionResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *ReplayInteractionResponse) GetFailedSelector() string {
	if x != nil {
		return x.FailedSelector
	}
	return ""
}

func (x *ReplayInteractionResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

func (x *ReplayInteractionResponse) GetConsoleErrors() []string {
	if x != nil {
		return x.ConsoleErrors
	}
	return nil
}

var File_renderer_proto protoreflect.FileDescriptor

const file_renderer_proto_rawDesc = "" +
	"\n" +
	"\x0erenderer.proto\x12\vrenderer.v1\"p\n" +
	"\x11RenderPageRequest\x12\x10\n" +
	"\x03url\x18\x01 \x01(\tR\x03url\x12\x1d\n" +
	"\n" +
	"timeout_ms\x18\x02 \x01(\x05R\ttimeoutMs\x12*\n" +
	"\x11wait_network_idle\x18\x03 \x01(\bR\x0fwaitNetworkIdle\"x\n" +
	"\bAssetRef\x12\x10\n" +
	"\x03url\x18\x01 \x01(\tR\x03url\x12\x1f\n" +
	"\vasset_class\x18\x02 \x01(\tR\n" +
	"assetClass\x12\x14\n" +
	"\x05bytes\x18\x03 \x01(\x03R\x05bytes\x12#\n" +
	"\rlcp_candidate\x18\x04 \x01(\bR\flcpCandidate\"o\n" +
	"\x12InteractiveElement\x12\x12\n" +
	"\x04kind\x18\x01 \x01(\tR\x04kind\x12\x1a\n" +
	"\bselector\x18\x02 \x01(\tR\bselector\x12)\n" +
	"\x10jquery_dependent\x18\x03 \x01(\bR\x0fjqueryDependent\"\x92\x02\n" +
	"\x12RenderPageResponse\x12\x12\n" +
	"\x04html\x18\x01 \x01(\tR\x04html\x12\x14\n" +
	"\x05links\x18\x02 \x03(\tR\x05links\x12-\n" +
	"\x06assets\x18\x03 \x03(\v2\x15.renderer.v1.AssetRefR\x06assets\x12R\n" +
	"\x14interactive_elements\x18\x04 \x03(\v2\x1f.renderer.v1.InteractiveElementR\x13interactiveElements\x12\x1f\n" +
	"\vclass_names\x18\x05 \x03(\tR\n" +
	"classNames\x12.\n" +
	"\x13third_party_origins\x18\x06 \x03(\tR\x11thirdPartyOrigins\"}\n" +
	"\x11ScreenshotRequest\x12\x10\n" +
	"\x03url\x18\x01 \x01(\tR\x03url\x12\x1a\n" +
	"\bviewport\x18\x02 \x01(\tR\bviewport\x12\x1d\n" +
	"\n" +
	"timeout_ms\x18\x03 \x01(\x05R\ttimeoutMs\x12\x1b\n" +
	"\tfull_page\x18\x04 \x01(\bR\bfullPage\"T\n" +
	"\x12ScreenshotResponse\x12\x10\n" +
	"\x03png\x18\x01 \x01(\fR\x03png\x12\x14\n" +
	"\x05width\x18\x02 \x01(\x05R\x05width\x12\x16\n" +
	"\x06height\x18\x03 \x01(\x05R\x06height\"[\n" +
	"\x0fInteractionStep\x12\x16\n" +
	"\x06action\x18\x01 \x01(\tR\x06action\x12\x1a\n" +
	"\bselector\x18\x02 \x01(\tR\bselector\x12\x14\n" +
	"\x05value\x18\x03 \x01(\tR\x05value\"\x7f\n" +
	"\x18ReplayInteractionRequest\x12\x10\n" +
	"\x03url\x18\x01 \x01(\tR\x03url\x122\n" +
	"\x05steps\x18\x02 \x03(\v2\x1c.renderer.v1.InteractionStepR\x05steps\x12\x1d\n" +
	"\n" +
	"timeout_ms\x18\x03 \x01(\x05R\ttimeoutMs\"\x9b\x01\n" +
	"\x19ReplayInteractionResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\x12'\n" +
	"\x0ffailed_selector\x18\x02 \x01(\tR\x0efailedSelector\x12\x14\n" +
	"\x05error\x18\x03 \x01(\tR\x05error\x12%\n" +
	"\x0econsole_errors\x18\x04 \x03(\tR\rconsoleErrors2\x93\x02\n" +
	"\x0fRendererService\x12M\n" +
	"\n" +
	"RenderPage\x12\x1e.renderer.v1.RenderPageRequest\x1a\x1f.renderer.v1.RenderPageResponse\x12M\n" +
	"\n" +
	"Screenshot\x12\x1e.renderer.v1.ScreenshotRequest\x1a\x1f.renderer.v1.ScreenshotResponse\x12b\n" +
	"\x11ReplayInteraction\x12%.renderer.v1.ReplayInteractionRequest\x1a&.renderer.v1.ReplayInteractionResponseB*Z(github.com/metrics-lab/staticpress/protob\x06proto3"

var (
	file_renderer_proto_rawDescOnce sync.Once
	file_renderer_proto_rawDescData []byte
)

func file_renderer_proto_rawDescGZIP() []byte {
	file_renderer_proto_rawDescOnce.Do(func() {
		file_renderer_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_renderer_proto_rawDesc), len(file_renderer_proto_rawDesc)))
	})
	return file_renderer_proto_rawDescData
}

var file_renderer_proto_msgTypes = make([]protoimpl.MessageInfo, 9)
var file_renderer_proto_goTypes = []any{
	(*RenderPageRequest)(nil),         // 0: renderer.v1.RenderPageRequest
	(*AssetRef)(nil),                  // 1: renderer.v1.AssetRef
	(*InteractiveElement)(nil),        // 2: renderer.v1.InteractiveElement
	(*RenderPageResponse)(nil),        // 3: renderer.v1.RenderPageResponse
	(*ScreenshotRequest)(nil),         // 4: renderer.v1.ScreenshotRequest
	(*ScreenshotResponse)(nil),        // 5: renderer.v1.ScreenshotResponse
	(*InteractionStep)(nil),           // 6: renderer.v1.InteractionStep
	(*ReplayInteractionRequest)(nil),  // 7: renderer.v1.ReplayInteractionRequest
	(*ReplayInteractionResponse)(nil), // 8: renderer.v1.ReplayInteractionResponse
}
var file_renderer_proto_depIdxs = []int32{
	1, // 0: renderer.v1.RenderPageResponse.assets:type_name -> renderer.v1.AssetRef
	2, // 1: renderer.v1.RenderPageResponse.interactive_elements:type_name -> renderer.v1.InteractiveElement
	6, // 2: renderer.v1.ReplayInteractionRequest.steps:type_name -> renderer.v1.InteractionStep
	0, // 3: renderer.v1.RendererService.RenderPage:input_type -> renderer.v1.RenderPageRequest
	4, // 4: renderer.v1.RendererService.Screenshot:input_type -> renderer.v1.ScreenshotRequest
	7, // 5: renderer.v1.RendererService.ReplayInteraction:input_type -> renderer.v1.ReplayInteractionRequest
	3, // 6: renderer.v1.RendererService.RenderPage:output_type -> renderer.v1.RenderPageResponse
	5, // 7: renderer.v1.RendererService.Screenshot:output_type -> renderer.v1.ScreenshotResponse
	8, // 8: renderer.v1.RendererService.ReplayInteraction:output_type -> renderer.v1.ReplayInteractionResponse
	6, // [6:9] is the sub-list for method output_type
	3, // [3:6] is the sub-list for method input_type
	3, // [3:3] is the sub-list for extension type_name
	3, // [3:3] is the sub-list for extension extendee
	0, // [0:3] is the sub-list for field type_name
}

func init() { file_renderer_proto_init() }
func file_renderer_proto_init() {
	if File_renderer_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_renderer_proto_rawDesc), len(file_renderer_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   9,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_renderer_proto_goTypes,
		DependencyIndexes: file_renderer_proto_depIdxs,
		MessageInfos:      file_renderer_proto_msgTypes,
	}.Build()
	File_renderer_proto = out.File
	file_renderer_proto_goTypes = nil
	file_renderer_proto_depIdxs = nil
}
