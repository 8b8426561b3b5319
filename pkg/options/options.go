package options

// DefaultOptions описывает, как читается файл кандидатов по умолчанию.
var DefaultOptions = CorpusOptions{
	NullMarker: "<null>",
	TrimSpace:  false,
	SkipEmpty:  false,
}

type CorpusOptions struct {
	NullMarker string // строка, обозначающая отсутствующий аргумент (null)
	TrimSpace  bool   // обрезать пробелы по краям строки перед оценкой
	SkipEmpty  bool   // пропускать пустые строки вместо оценки как ""
}

type Options interface {
	Apply(options *CorpusOptions)
}

type FuncConfig struct {
	ops func(options *CorpusOptions)
}

func (w FuncConfig) Apply(conf *CorpusOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *CorpusOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

// Resolve applies opts on top of DefaultOptions.
func Resolve(opts ...Options) CorpusOptions {
	conf := DefaultOptions
	for _, o := range opts {
		if o != nil {
			o.Apply(&conf)
		}
	}
	return conf
}

// Пустой маркер отключает распознавание null: все строки считаются присутствующими.
func WithNullMarker(marker string) Options {
	return NewFuncOption(func(options *CorpusOptions) {
		options.NullMarker = marker
	})
}

func WithTrimSpace() Options {
	return NewFuncOption(func(options *CorpusOptions) {
		options.TrimSpace = true
	})
}

func WithSkipEmpty() Options {
	return NewFuncOption(func(options *CorpusOptions) {
		options.SkipEmpty = true
	})
}
