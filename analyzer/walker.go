package analyzer

import (
	"encoding/json"

	"github.com/testforge/testforge/analyzer/model"
)

// walk traverses one items array depth-first in document order and returns
// the endpoints found beneath it as a fresh slice. Folder nodes merge their
// own variables over a copy of the inherited folder scope before recursing,
// so sibling subtrees never observe each other's variables. Malformed nodes
// are logged and skipped; they never abort the traversal.
func (a *Analyzer) walk(items json.RawMessage, parentPath, collectionName string, collectionVars, folderVars map[string]string) []*Endpoint {
	if len(items) == 0 || string(items) == "null" {
		return nil
	}

	var rawItems []json.RawMessage
	if err := json.Unmarshal(items, &rawItems); err != nil {
		a.logger.Warn("items is not an array, skipping subtree",
			"folder", parentPath,
			"error", err)
		return nil
	}

	var endpoints []*Endpoint
	for i, raw := range rawItems {
		var item model.Item
		if err := json.Unmarshal(raw, &item); err != nil {
			a.logger.Warn("skipping malformed item",
				"folder", parentPath,
				"index", i,
				"error", err)
			continue
		}

		if item.IsFolder() {
			folderPath := item.Name
			if parentPath != "" {
				folderPath = parentPath + "/" + item.Name
			}
			merged := mergeVariables(folderVars, item.Variables)
			endpoints = append(endpoints, a.walk(item.Items, folderPath, collectionName, collectionVars, merged)...)
			continue
		}

		ep, err := a.parseRequest(&item, parentPath, collectionName, collectionVars, folderVars)
		if err != nil {
			a.logger.Warn("skipping request",
				"folder", parentPath,
				"name", item.Name,
				"error", err)
			continue
		}
		if ep == nil {
			a.logger.Warn("item has no request sub-structure, skipping",
				"folder", parentPath,
				"name", item.Name)
			continue
		}
		endpoints = append(endpoints, ep)
	}
	return endpoints
}

// mergeVariables copies the inherited folder scope and overlays the folder's
// own declarations. Keys declared on the folder win; entries with an empty
// key are skipped.
func mergeVariables(inherited map[string]string, own []model.Variable) map[string]string {
	merged := make(map[string]string, len(inherited)+len(own))
	for k, v := range inherited {
		merged[k] = v
	}
	for _, v := range own {
		if v.Key == "" {
			continue
		}
		merged[v.Key] = v.Value
	}
	return merged
}
