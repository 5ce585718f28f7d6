// Package devops emits Azure DevOps pipeline logging directives.
package devops

import "fmt"

func LogError(msg string, a ...any) {
	fmt.Printf("##vso[task.logissue type=error]%s\n", fmt.Sprintf(msg, a...))
}

func LogWarning(msg string, a ...any) {
	fmt.Printf("##vso[task.logissue type=warning]%s\n", fmt.Sprintf(msg, a...))
}

// OpenGroup starts a collapsible log group. Suites run strictly one
// after another, so groups never nest.
func OpenGroup(name string) {
	fmt.Printf("##[group]%s\n", name)
}

func CloseGroup() {
	fmt.Println("##[endgroup]")
}
