package chord

const (
	Undefined   = "undefined"
	UndefinedZh = "无定义"
)

var triadNames = map[Quality]string{
	Augmented:  "augmented",
	Major:      "major",
	Minor:      "minor",
	Diminished: "diminished",
}

var seventhNames = map[Quality]string{
	Augmented:      "augmented-major",
	Major:          "major",
	Minor:          "minor",
	MajorMinor:     "major-minor",
	MinorMajor:     "minor-major",
	HalfDiminished: "half-diminished",
	Diminished:     "diminished",
}

var triadNamesZh = map[Quality]string{
	Augmented:  "增",
	Major:      "大",
	Minor:      "小",
	Diminished: "减",
}

var seventhNamesZh = map[Quality]string{
	Augmented:      "增大",
	Major:          "大",
	Minor:          "小",
	MajorMinor:     "大小",
	MinorMajor:     "小大",
	HalfDiminished: "半减",
	Diminished:     "减",
}

var inversionNames = map[Inversion]string{
	Root:   "root position",
	First:  "first inversion",
	Second: "second inversion",
	Third:  "third inversion",
}

var triadFigures = map[Inversion]string{
	Root:   "5/3",
	First:  "6",
	Second: "6/4",
}

var seventhFigures = map[Inversion]string{
	Root:   "7",
	First:  "6/5",
	Second: "4/3",
	Third:  "4/2",
}

var triadFiguresZh = map[Inversion]string{
	Root:   "三",
	First:  "六",
	Second: "四六",
}

var seventhFiguresZh = map[Inversion]string{
	Root:   "七",
	First:  "五六",
	Second: "三四",
	Third:  "二",
}

func (i Inversion) String() string {
	if name, ok := inversionNames[i]; ok {
		return name
	}
	return Undefined
}

func (q Quality) String() string {
	switch q {
	case Augmented:
		return "augmented"
	case Major:
		return "major"
	case Minor:
		return "minor"
	case Diminished:
		return "diminished"
	case MajorMinor:
		return "major-minor"
	case MinorMajor:
		return "minor-major"
	case HalfDiminished:
		return "half-diminished"
	}
	return "unknown"
}
