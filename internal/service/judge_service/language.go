package judge_service

// Language is the canonical identity the judger daemon expects,
// independent of how the client spelled it.
type Language struct {
	Name string `json:"name"`
	Ext  string `json:"ext"`
}

var languages = map[string]Language{
	"C":      {Name: "C", Ext: "c"},
	"C++":    {Name: "C++", Ext: "cpp"},
	"Java":   {Name: "Java", Ext: "java"},
	"Python": {Name: "Python", Ext: "py"},
}

// browser form encoding cannot carry a literal '+' reliably, so clients
// send "C2" for C++
var languageAliases = map[string]string{
	"C2": "C++",
}

// GetLanguage maps a client-supplied language token to its canonical
// identity. Lookup is case-sensitive and exact after alias substitution.
func GetLanguage(token string) (Language, bool) {
	if canonical, ok := languageAliases[token]; ok {
		token = canonical
	}
	lang, ok := languages[token]
	return lang, ok
}
