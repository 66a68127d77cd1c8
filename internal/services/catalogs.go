package services

// Static keyword catalogs used by the analyzer and scorer. These are
// fixed configuration data; scoring output depends on their exact
// contents, so treat any edit as a contract change.

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"from": {}, "as": {}, "is": {}, "was": {}, "are": {}, "been": {}, "be": {},
	"have": {}, "has": {}, "do": {}, "does": {}, "did": {}, "will": {},
	"would": {}, "could": {}, "should": {}, "may": {}, "might": {}, "must": {},
	"can": {}, "this": {}, "that": {}, "these": {}, "those": {}, "i": {},
	"you": {}, "he": {}, "she": {}, "it": {}, "we": {}, "they": {}, "what": {},
	"which": {}, "who": {}, "when": {}, "where": {}, "why": {}, "how": {},
	"all": {}, "each": {}, "every": {}, "both": {}, "few": {}, "more": {},
	"most": {}, "other": {}, "some": {}, "such": {}, "no": {}, "nor": {},
	"not": {}, "only": {}, "own": {}, "same": {}, "so": {}, "than": {},
	"too": {}, "very": {},
}

var techSkills = map[string]struct{}{
	"python": {}, "java": {}, "javascript": {}, "sql": {}, "aws": {},
	"azure": {}, "gcp": {}, "react": {}, "django": {}, "flask": {},
	"node": {}, "docker": {}, "kubernetes": {}, "machine": {},
	"learning": {}, "data": {}, "analysis": {}, "analytics": {}, "api": {},
	"rest": {}, "graphql": {}, "devops": {}, "ci": {}, "cd": {}, "git": {},
	"linux": {}, "windows": {}, "agile": {}, "scrum": {}, "jira": {},
	"mongodb": {}, "postgresql": {}, "redis": {},
}

var professionalTerms = map[string]struct{}{
	"achieved": {}, "improved": {}, "led": {}, "managed": {},
	"developed": {}, "implemented": {}, "designed": {}, "created": {},
	"optimized": {}, "increased": {}, "delivered": {}, "contributed": {},
	"collaborated": {}, "proven": {},
}
