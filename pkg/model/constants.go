package model

// SVClass enumerates the structural-variant classes a cell can encode.
type SVClass int

const (
	SVClassNIL SVClass = iota // SV not detected
	SVClassDEL                // deletion
	SVClassINV                // inversion
	SVClassINS                // insertion
	SVClassBND                // translocation / transposition
	SVClassDUP                // tandem duplication
	SVClassUKN                // unknown
)

func (c SVClass) String() string {
	switch c {
	case SVClassNIL:
		return "NIL"
	case SVClassDEL:
		return "DEL"
	case SVClassINV:
		return "INV"
	case SVClassINS:
		return "INS"
	case SVClassBND:
		return "BND"
	case SVClassDUP:
		return "DUP"
	default:
		return "UKN"
	}
}

func ParseSVClass(tag string) SVClass {
	switch tag {
	case "NIL":
		return SVClassNIL
	case "DEL":
		return SVClassDEL
	case "INV":
		return SVClassINV
	case "INS":
		return SVClassINS
	case "BND":
		return SVClassBND
	case "DUP":
		return SVClassDUP
	default:
		return SVClassUKN
	}
}

// Code returns the class code stored in dataset cells. Classes sit 0.2
// apart so the discrete colorscale bins line up with the marker boundaries
// used by the renderer.
func (c SVClass) Code() float64 {
	return 0.2 * float64(c)
}

// SVClasses lists every class in colorbar order.
var SVClasses = []SVClass{
	SVClassNIL,
	SVClassDEL,
	SVClassINV,
	SVClassINS,
	SVClassBND,
	SVClassDUP,
	SVClassUKN,
}

// SVClassTags lists the class tags in colorbar order.
func SVClassTags() []string {
	tags := make([]string, len(SVClasses))
	for i, c := range SVClasses {
		tags[i] = c.String()
	}
	return tags
}
