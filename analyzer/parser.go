package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/testforge/testforge/analyzer/model"
)

// parseRequest converts one leaf item into a normalized Endpoint. It returns
// (nil, nil) when the item lacks a request sub-structure; the walker logs
// the skip. A decode failure is returned as an error so the walker can skip
// the node without aborting its siblings.
//
// Variable substitution is applied to the final URL, header values and the
// raw body only. Query-param and form-field values are deliberately left
// untouched; generated suites match collections produced against that
// behavior.
func (a *Analyzer) parseRequest(item *model.Item, folderPath, collectionName string, collectionVars, folderVars map[string]string) (*Endpoint, error) {
	if len(item.Request) == 0 || string(item.Request) == "null" {
		return nil, nil
	}

	var req model.Request
	if err := json.Unmarshal(item.Request, &req); err != nil {
		return nil, fmt.Errorf("decoding request %q: %w", item.Name, err)
	}

	ep := &Endpoint{
		Name:           item.Name,
		Method:         strings.ToUpper(req.Method),
		QueryParams:    make(map[string]string),
		Headers:        make(map[string]string),
		FormData:       make(map[string]string),
		FolderPath:     folderPath,
		CollectionName: collectionName,
		Description:    req.Description.String(),
	}
	if ep.Name == "" {
		ep.Name = DefaultRequestName
	}
	if ep.Method == "" {
		ep.Method = DefaultMethod
	}

	a.extractURL(ep, &req.URL, collectionVars, folderVars)
	a.extractHeaders(ep, req.Headers, collectionVars, folderVars)
	a.extractBody(ep, req.Body, collectionVars, folderVars)
	a.extractExampleResponses(ep, item.Responses)
	a.extractTestScript(ep, item.Events)

	return ep, nil
}

// extractURL assembles the URL fields. The reconstructed host+path form is
// preferred only when both pieces were derived; anything less falls back to
// the raw string as authored.
func (a *Analyzer) extractURL(ep *Endpoint, u *model.URL, collectionVars, folderVars map[string]string) {
	finalURL := u.Raw

	if len(u.Host) > 0 {
		ep.Host = strings.Join(u.Host, ".")
		if u.Protocol != "" {
			ep.Host = u.Protocol + "://" + ep.Host
		}
	}

	var path strings.Builder
	for _, seg := range u.Path {
		path.WriteString("/")
		path.WriteString(seg)
	}
	ep.Path = path.String()

	for _, q := range u.Query {
		if q.Disabled {
			continue
		}
		ep.QueryParams[q.Key] = q.Value
	}

	if ep.Host != "" && ep.Path != "" {
		finalURL = ep.Host + ep.Path
	}
	ep.URL = Resolve(finalURL, collectionVars, folderVars)
}

func (a *Analyzer) extractHeaders(ep *Endpoint, headers []model.Header, collectionVars, folderVars map[string]string) {
	for _, h := range headers {
		if h.Disabled {
			continue
		}
		ep.Headers[h.Key] = Resolve(h.Value, collectionVars, folderVars)
	}
}

func (a *Analyzer) extractBody(ep *Endpoint, body *model.Body, collectionVars, folderVars map[string]string) {
	if body == nil {
		return
	}

	switch body.Mode {
	case "raw":
		ep.RequestBody = Resolve(body.Raw, collectionVars, folderVars)
		lang := ""
		if body.Options != nil && body.Options.Raw != nil {
			lang = body.Options.Raw.Language
		}
		ep.RequestBodyType = classifyRawBody(ep.RequestBody, lang)
	case "urlencoded":
		ep.RequestBodyType = BodyTypeURLEncoded
		fillFormData(ep.FormData, body.URLEncoded)
	case "formdata":
		ep.RequestBodyType = BodyTypeFormData
		fillFormData(ep.FormData, body.FormData)
	}
	// unknown modes leave the body fields at their empty defaults
}

// classifyRawBody tags a raw payload. An explicit language hint wins;
// without one the content is sniffed for a JSON shape.
func classifyRawBody(content, language string) string {
	if language != "" {
		return language
	}
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return BodyTypeJSON
	}
	return BodyTypeRaw
}

func fillFormData(dst map[string]string, fields []model.FormParam) {
	for _, f := range fields {
		if f.Disabled {
			continue
		}
		dst[f.Key] = f.Value
	}
}

func (a *Analyzer) extractExampleResponses(ep *Endpoint, responses []model.Response) {
	for _, r := range responses {
		ex := ExampleResponse{
			Name: r.Name,
			Code: r.Code,
			Body: r.Body,
		}
		if ex.Name == "" {
			ex.Name = DefaultExampleName
		}
		if ex.Code == 0 {
			ex.Code = DefaultStatusCode
		}
		if len(r.Headers) > 0 {
			ex.Headers = make(map[string]string, len(r.Headers))
			for _, h := range r.Headers {
				ex.Headers[h.Key] = h.Value
			}
		}

		trimmed := strings.TrimSpace(r.Body)
		if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
			var parsed any
			// a body that only looks like JSON is kept as plain text
			if err := json.Unmarshal([]byte(r.Body), &parsed); err == nil {
				ex.JSONBody = parsed
			}
		}

		ep.ExampleResponses = append(ep.ExampleResponses, ex)
	}
}

// extractTestScript joins the lines of test event hooks. When an item
// carries several test events the last one wins.
func (a *Analyzer) extractTestScript(ep *Endpoint, events []model.Event) {
	for _, ev := range events {
		if ev.Listen != model.ListenTest || ev.Script == nil {
			continue
		}
		ep.TestScript = strings.Join(ev.Script.Exec, "\n")
	}
}
