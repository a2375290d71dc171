package report

// Schema is the JSON Schema (Draft 2020-12) for the output of
// WriteJSON.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/unbound-force/recase/explain-report.schema.json",
  "title": "recase Explain Report",
  "description": "Output schema for recase explain --format=json",
  "type": "object",
  "required": ["version", "reference", "priorities", "possible", "admitted", "style", "source", "rank"],
  "properties": {
    "version": {
      "type": "string",
      "description": "recase version that produced the report"
    },
    "reference": {
      "type": "string",
      "description": "The classified reference string"
    },
    "priorities": {
      "type": "array",
      "items": { "$ref": "#/$defs/Style" },
      "description": "Priority styles in the order they were tried"
    },
    "possible": { "$ref": "#/$defs/Possible" },
    "admitted": {
      "type": "integer",
      "minimum": 0,
      "maximum": 64,
      "description": "Number of styles consistent with the reference"
    },
    "style": { "$ref": "#/$defs/Style" },
    "source": {
      "type": "string",
      "enum": ["priority", "default", "fallback"],
      "description": "Resolution stage that produced the style"
    },
    "rank": {
      "type": "integer",
      "minimum": -1,
      "description": "Index in the priority list or default order; -1 for fallback"
    }
  },
  "$defs": {
    "Separator": {
      "type": "string",
      "enum": ["None", "Underscore", "Hyphen", "Space"]
    },
    "Case": {
      "type": "string",
      "enum": ["Lower", "Camel", "AllCaps", "Caps"]
    },
    "Style": {
      "type": "object",
      "required": ["spec", "leading", "case", "word", "example"],
      "properties": {
        "spec": {
          "type": "string",
          "description": "Compact style notation, e.g. a_b or _aB"
        },
        "leading": { "$ref": "#/$defs/Separator" },
        "case": { "$ref": "#/$defs/Case" },
        "word": { "$ref": "#/$defs/Separator" },
        "example": {
          "type": "string",
          "description": "Sample identifier written in this style"
        }
      }
    },
    "Possible": {
      "type": "object",
      "required": ["leading", "case", "word"],
      "properties": {
        "leading": { "type": "array", "items": { "$ref": "#/$defs/Separator" } },
        "case": { "type": "array", "items": { "$ref": "#/$defs/Case" } },
        "word": { "type": "array", "items": { "$ref": "#/$defs/Separator" } }
      }
    }
  }
}`
