package bpmn

import "encoding/xml"

// Export document model. Element names carry the conventional bpmn/bpmndi/
// dc/di prefixes; the namespace declarations live on the root element.

type xmlDefinitions struct {
	XMLName         xml.Name   `xml:"bpmn:definitions"`
	XMLNSBPMN       string     `xml:"xmlns:bpmn,attr"`
	XMLNSBPMNDI     string     `xml:"xmlns:bpmndi,attr"`
	XMLNSDC         string     `xml:"xmlns:dc,attr"`
	XMLNSDI         string     `xml:"xmlns:di,attr"`
	ID              string     `xml:"id,attr"`
	TargetNamespace string     `xml:"targetNamespace,attr"`
	Process         xmlProcess `xml:"bpmn:process"`
	Diagram         xmlDiagram `xml:"bpmndi:BPMNDiagram"`
}

type xmlProcess struct {
	ID           string       `xml:"id,attr"`
	IsExecutable bool         `xml:"isExecutable,attr"`
	StartEvents  []xmlElement `xml:"bpmn:startEvent"`
	Tasks        []xmlElement `xml:"bpmn:task"`
	Gateways     []xmlElement `xml:"bpmn:exclusiveGateway"`
	EndEvents    []xmlElement `xml:"bpmn:endEvent"`
	Flows        []xmlSeqFlow `xml:"bpmn:sequenceFlow"`
}

type xmlElement struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"name,attr,omitempty"`
}

type xmlSeqFlow struct {
	ID        string `xml:"id,attr"`
	Name      string `xml:"name,attr,omitempty"`
	SourceRef string `xml:"sourceRef,attr"`
	TargetRef string `xml:"targetRef,attr"`
}

type xmlDiagram struct {
	ID    string   `xml:"id,attr"`
	Plane xmlPlane `xml:"bpmndi:BPMNPlane"`
}

type xmlPlane struct {
	ID          string     `xml:"id,attr"`
	BPMNElement string     `xml:"bpmnElement,attr"`
	Shapes      []xmlShape `xml:"bpmndi:BPMNShape"`
	Edges       []xmlEdge  `xml:"bpmndi:BPMNEdge"`
}

type xmlShape struct {
	ID          string    `xml:"id,attr"`
	BPMNElement string    `xml:"bpmnElement,attr"`
	Bounds      xmlBounds `xml:"dc:Bounds"`
}

type xmlBounds struct {
	X float64 `xml:"x,attr"`
	Y float64 `xml:"y,attr"`
	W float64 `xml:"width,attr"`
	H float64 `xml:"height,attr"`
}

type xmlEdge struct {
	ID          string        `xml:"id,attr"`
	BPMNElement string        `xml:"bpmnElement,attr"`
	Waypoints   []xmlWaypoint `xml:"di:waypoint"`
}

type xmlWaypoint struct {
	X float64 `xml:"x,attr"`
	Y float64 `xml:"y,attr"`
}

// Import document model. Tags use local names only so both prefixed and
// default-namespace documents parse.

type inDefinitions struct {
	Process inProcess `xml:"process"`
	Diagram inDiagram `xml:"BPMNDiagram"`
}

type inProcess struct {
	StartEvents       []inElement `xml:"startEvent"`
	EndEvents         []inElement `xml:"endEvent"`
	Tasks             []inElement `xml:"task"`
	UserTasks         []inElement `xml:"userTask"`
	ServiceTasks      []inElement `xml:"serviceTask"`
	ScriptTasks       []inElement `xml:"scriptTask"`
	ManualTasks       []inElement `xml:"manualTask"`
	ExclusiveGateways []inElement `xml:"exclusiveGateway"`
	InclusiveGateways []inElement `xml:"inclusiveGateway"`
	Flows             []inSeqFlow `xml:"sequenceFlow"`
}

type inElement struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type inSeqFlow struct {
	ID        string `xml:"id,attr"`
	Name      string `xml:"name,attr"`
	SourceRef string `xml:"sourceRef,attr"`
	TargetRef string `xml:"targetRef,attr"`
}

type inDiagram struct {
	Plane inPlane `xml:"BPMNPlane"`
}

type inPlane struct {
	Shapes []inShape `xml:"BPMNShape"`
}

type inShape struct {
	BPMNElement string    `xml:"bpmnElement,attr"`
	Bounds      xmlBounds `xml:"Bounds"`
}
