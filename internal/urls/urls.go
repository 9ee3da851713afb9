package urls

// DefaultListsEndpoint is the remote API that serves the grouped item records.
// It answers a plain GET with a JSON object whose values are arrays of
// {id, name, scientific_name, list_number} records.
const DefaultListsEndpoint = "https://apis.ccbp.in/list-creation/lists"

// ProjectURL is shown in the application header.
const ProjectURL = "github.com/listcraft/listcraft"

// IssuesURL is printed alongside fetch failures in the non-interactive output.
const IssuesURL = "https://github.com/listcraft/listcraft/issues"
